package repository

import (
	"context"

	"github.com/spec-kit/skills-registry/internal/domain"
)

// NewsRepository defines storage access for news items.
// ListPublished returns only published items, newest first; GetByID returns
// the item regardless of publish state.
type NewsRepository interface {
	Create(ctx context.Context, item *domain.News) error
	GetByID(ctx context.Context, id int) (*domain.News, error)
	ListPublished(ctx context.Context) ([]domain.News, error)
}
