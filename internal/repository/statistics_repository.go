package repository

import (
	"context"

	"github.com/spec-kit/skills-registry/internal/domain"
)

// StatisticsRepository defines storage access for aggregate statistics.
// UpdateValue replaces the value in place, refreshes UpdatedAt and returns
// ErrNotFound when the id is absent.
//
// IncrementValue adds delta to the bucket identified by category and
// region, creating the bucket when none exists. The lookup and the write
// share one critical section, so concurrent increments cannot lose updates.
type StatisticsRepository interface {
	Create(ctx context.Context, stat *domain.Statistic) error
	List(ctx context.Context) ([]domain.Statistic, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Statistic, error)
	UpdateValue(ctx context.Context, id, value int) (*domain.Statistic, error)
	IncrementValue(ctx context.Context, category, region string, delta int) (*domain.Statistic, error)
}
