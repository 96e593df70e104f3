package service

import (
	"context"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
)

// StatisticsService exposes aggregate statistics reads and writes.
type StatisticsService struct {
	stats repository.StatisticsRepository
}

// NewStatisticsService builds the service.
func NewStatisticsService(stats repository.StatisticsRepository) *StatisticsService {
	return &StatisticsService{stats: stats}
}

// StatisticInput describes a statistic insertion after request validation.
type StatisticInput struct {
	Category string
	Value    int
	Region   string
}

// Create inserts a new statistic row.
func (s *StatisticsService) Create(ctx context.Context, in StatisticInput) (*domain.Statistic, error) {
	region := in.Region
	if region == "" {
		region = domain.RegionAll
	}
	stat := &domain.Statistic{
		Category: in.Category,
		Value:    in.Value,
		Region:   region,
	}
	if err := s.stats.Create(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// List returns every statistic row.
func (s *StatisticsService) List(ctx context.Context) ([]domain.Statistic, error) {
	return s.stats.List(ctx)
}

// ByCategory returns statistic rows in the given category.
func (s *StatisticsService) ByCategory(ctx context.Context, category string) ([]domain.Statistic, error) {
	return s.stats.ListByCategory(ctx, category)
}

// UpdateValue replaces a statistic value in place.
func (s *StatisticsService) UpdateValue(ctx context.Context, id, value int) (*domain.Statistic, error) {
	return s.stats.UpdateValue(ctx, id, value)
}
