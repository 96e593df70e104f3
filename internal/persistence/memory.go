package persistence

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/skills-registry/internal/domain"
)

// Store holds every entity collection in process memory. Each collection is
// a map keyed by id with its own monotonically increasing counter starting
// at 1; ids are never reused within a process lifetime. A single mutex
// guards all collections, which makes check-and-insert pairs (such as the
// registration uniqueness check) one atomic step. State is discarded on
// process termination.
type Store struct {
	mu sync.Mutex

	users      map[int]domain.User
	skills     map[int]domain.Skill
	statistics map[int]domain.Statistic
	news       map[int]domain.News

	nextUserID      int
	nextSkillID     int
	nextStatisticID int
	nextNewsID      int
}

// NewStore builds an empty store and loads the seed statistics and news so
// dashboards have data before any user submits anything.
func NewStore(logger *zap.Logger) *Store {
	s := &Store{
		users:           make(map[int]domain.User),
		skills:          make(map[int]domain.Skill),
		statistics:      make(map[int]domain.Statistic),
		news:            make(map[int]domain.News),
		nextUserID:      1,
		nextSkillID:     1,
		nextStatisticID: 1,
		nextNewsID:      1,
	}
	s.seed()

	if logger != nil {
		logger.Info("in-memory store initialized",
			zap.Int("seed_statistics", len(s.statistics)),
			zap.Int("seed_news", len(s.news)))
	}
	return s
}

// Ping verifies the store is usable.
func (s *Store) Ping(_ context.Context) error {
	if s == nil {
		return errors.New("store not configured")
	}
	return nil
}

// Counts reports collection sizes for readiness reporting.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"users":      len(s.users),
		"skills":     len(s.skills),
		"statistics": len(s.statistics),
		"news":       len(s.news),
	}
}

func (s *Store) allocUserID() int {
	id := s.nextUserID
	s.nextUserID++
	return id
}

func (s *Store) allocSkillID() int {
	id := s.nextSkillID
	s.nextSkillID++
	return id
}

func (s *Store) allocStatisticID() int {
	id := s.nextStatisticID
	s.nextStatisticID++
	return id
}

func (s *Store) allocNewsID() int {
	id := s.nextNewsID
	s.nextNewsID++
	return id
}

// now is a seam for tests that need deterministic timestamps.
var now = time.Now
