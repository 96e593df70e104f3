package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/events"
	"github.com/spec-kit/skills-registry/internal/repository"
)

// AggregationService keeps the seeded aggregate counters in step with live
// activity: registrations bump the user counters and the registrant's
// regional bucket, skill submissions bump the skills counter.
type AggregationService struct {
	stats      repository.StatisticsRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAggregationService creates the service.
func NewAggregationService(stats repository.StatisticsRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AggregationService {
	return &AggregationService{stats: stats, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AggregationService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handleUserRegistered)
	a.dispatcher.Subscribe(events.EventSkillAdded, a.handleSkillAdded)
}

func (a *AggregationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return nil
	}

	a.bump(ctx, domain.StatRegisteredUsers, domain.RegionAll, 1)
	if payload.UserType == domain.UserTypeEmployer {
		a.bump(ctx, domain.StatEmployers, domain.RegionAll, 1)
	}
	if payload.District != "" {
		a.bump(ctx, domain.StatRegionalDistribution, strings.ToLower(payload.District), 1)
	}
	return nil
}

func (a *AggregationService) handleSkillAdded(ctx context.Context, event events.Event) error {
	if _, ok := event.Payload.(events.SkillAddedPayload); !ok {
		return nil
	}
	a.bump(ctx, domain.StatSkills, domain.RegionAll, 1)
	return nil
}

// bump adds delta to the statistic identified by category and region. The
// repository increment finds or creates the bucket atomically, so bumps
// from concurrent requests never lose updates.
func (a *AggregationService) bump(ctx context.Context, category, region string, delta int) {
	if _, err := a.stats.IncrementValue(ctx, category, region, delta); err != nil {
		a.logger.Warn("statistics increment failed",
			zap.String("category", category),
			zap.String("region", region),
			zap.Error(err))
	}
}
