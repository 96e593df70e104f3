package persistence

import (
	"context"
	"sort"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
)

type skillStore struct {
	store *Store
}

// NewSkillRepository returns a memory-backed implementation.
func NewSkillRepository(store *Store) repository.SkillRepository {
	return &skillStore{store: store}
}

func (r *skillStore) Create(_ context.Context, skill *domain.Skill) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	skill.ID = s.allocSkillID()
	skill.CreatedAt = now()
	s.skills[skill.ID] = *skill
	return nil
}

func (r *skillStore) GetByID(_ context.Context, id int) (*domain.Skill, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &skill, nil
}

func (r *skillStore) ListByUser(_ context.Context, userID int) ([]domain.Skill, error) {
	return r.list(func(sk domain.Skill) bool { return sk.UserID == userID })
}

func (r *skillStore) ListByCategory(_ context.Context, category string) ([]domain.Skill, error) {
	return r.list(func(sk domain.Skill) bool { return sk.Category == category })
}

func (r *skillStore) list(match func(domain.Skill) bool) ([]domain.Skill, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := make([]domain.Skill, 0)
	for _, skill := range s.skills {
		if match(skill) {
			skills = append(skills, skill)
		}
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].ID < skills[j].ID })
	return skills, nil
}

// Distribution counts stored skills per category. With zero skill records it
// falls back to the seeded skills_distribution statistics reshaped into the
// same output, so charts are never empty before real submissions arrive.
// The fallback triggers on an empty collection only.
func (r *skillStore) Distribution(_ context.Context) ([]domain.CategoryCount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.skills) == 0 {
		seeded := make([]domain.CategoryCount, 0)
		for _, stat := range s.statistics {
			if stat.Category != domain.StatSkillsDistribution {
				continue
			}
			seeded = append(seeded, domain.CategoryCount{Category: stat.Region, Count: stat.Value})
		}
		sort.Slice(seeded, func(i, j int) bool { return seeded[i].Count > seeded[j].Count })
		return seeded, nil
	}

	counts := make(map[string]int)
	for _, skill := range s.skills {
		counts[skill.Category]++
	}

	distribution := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		distribution = append(distribution, domain.CategoryCount{Category: category, Count: count})
	}
	return distribution, nil
}
