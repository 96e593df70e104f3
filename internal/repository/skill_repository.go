package repository

import (
	"context"

	"github.com/spec-kit/skills-registry/internal/domain"
)

// SkillRepository defines storage access for skill records.
//
// Distribution groups stored skills by category. While the collection is
// still empty it falls back to the seeded skills_distribution statistics so
// consumers never see an empty chart; the fallback triggers on an empty
// collection, never on a failed query.
type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) error
	GetByID(ctx context.Context, id int) (*domain.Skill, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Skill, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Skill, error)
	Distribution(ctx context.Context) ([]domain.CategoryCount, error)
}
