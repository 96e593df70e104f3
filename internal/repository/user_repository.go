package repository

import (
	"context"

	"github.com/spec-kit/skills-registry/internal/domain"
)

// UserRepository defines storage access for registered accounts.
//
// Create enforces username and email uniqueness atomically with the insert:
// the check and the write happen inside one critical section, so two
// concurrent registrations with the same username cannot both succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, userType domain.UserType) ([]domain.User, error)
}
