package persistence

import (
	"context"
	"sort"
	"strings"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
)

type statisticsStore struct {
	store *Store
}

// NewStatisticsRepository returns a memory-backed implementation.
func NewStatisticsRepository(store *Store) repository.StatisticsRepository {
	return &statisticsStore{store: store}
}

func (r *statisticsStore) Create(_ context.Context, stat *domain.Statistic) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stat.ID = s.allocStatisticID()
	stat.UpdatedAt = now()
	s.statistics[stat.ID] = *stat
	return nil
}

func (r *statisticsStore) List(_ context.Context) ([]domain.Statistic, error) {
	return r.list(func(domain.Statistic) bool { return true })
}

func (r *statisticsStore) ListByCategory(_ context.Context, category string) ([]domain.Statistic, error) {
	return r.list(func(st domain.Statistic) bool { return st.Category == category })
}

func (r *statisticsStore) list(match func(domain.Statistic) bool) ([]domain.Statistic, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make([]domain.Statistic, 0)
	for _, stat := range s.statistics {
		if match(stat) {
			stats = append(stats, stat)
		}
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })
	return stats, nil
}

// IncrementValue adds delta to the statistic matching category and region,
// inserting a fresh bucket when none exists. Find and write happen under
// one lock so concurrent increments never lose updates.
func (r *statisticsStore) IncrementValue(_ context.Context, category, region string, delta int) (*domain.Statistic, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, stat := range s.statistics {
		if stat.Category == category && strings.EqualFold(stat.Region, region) {
			stat.Value += delta
			stat.UpdatedAt = now()
			s.statistics[id] = stat
			return &stat, nil
		}
	}

	stat := domain.Statistic{
		ID:        s.allocStatisticID(),
		Category:  category,
		Value:     delta,
		Region:    region,
		UpdatedAt: now(),
	}
	s.statistics[stat.ID] = stat
	return &stat, nil
}

// UpdateValue replaces the value in place and refreshes UpdatedAt.
func (r *statisticsStore) UpdateValue(_ context.Context, id, value int) (*domain.Statistic, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stat, ok := s.statistics[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stat.Value = value
	stat.UpdatedAt = now()
	s.statistics[id] = stat
	return &stat, nil
}
