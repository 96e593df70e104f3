package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/events"
	"github.com/spec-kit/skills-registry/internal/repository"
)

// SkillService coordinates skill submission and aggregation reads.
type SkillService struct {
	skills     repository.SkillRepository
	dispatcher events.Dispatcher
}

// NewSkillService builds the service.
func NewSkillService(skills repository.SkillRepository, dispatcher events.Dispatcher) *SkillService {
	return &SkillService{skills: skills, dispatcher: dispatcher}
}

// SkillInput describes a skill submission after request validation.
type SkillInput struct {
	UserID            int
	SkillName         string
	Category          string
	ProficiencyLevel  string
	YearsOfExperience int
	Certifications    string
}

// Add stores a new skill record for the given user.
func (s *SkillService) Add(ctx context.Context, in SkillInput) (*domain.Skill, error) {
	skill := &domain.Skill{
		UserID:            in.UserID,
		SkillName:         in.SkillName,
		Category:          in.Category,
		ProficiencyLevel:  in.ProficiencyLevel,
		YearsOfExperience: in.YearsOfExperience,
		Certifications:    in.Certifications,
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSkillAdded,
			Timestamp: time.Now(),
			Payload: events.SkillAddedPayload{
				SkillID:  skill.ID,
				UserID:   skill.UserID,
				Category: skill.Category,
			},
		})
	}
	return skill, nil
}

// UserSkills lists skills submitted by the given user.
func (s *SkillService) UserSkills(ctx context.Context, userID int) ([]domain.Skill, error) {
	return s.skills.ListByUser(ctx, userID)
}

// ByCategory lists skills in the given category.
func (s *SkillService) ByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	return s.skills.ListByCategory(ctx, category)
}

// Distribution returns the category/count aggregation driving charts.
func (s *SkillService) Distribution(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.skills.Distribution(ctx)
}
