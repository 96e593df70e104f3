package persistence

import (
	"context"
	"sort"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
)

type newsStore struct {
	store *Store
}

// NewNewsRepository returns a memory-backed implementation.
func NewNewsRepository(store *Store) repository.NewsRepository {
	return &newsStore{store: store}
}

func (r *newsStore) Create(_ context.Context, item *domain.News) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.allocNewsID()
	item.PublishedDate = now()
	s.news[item.ID] = *item
	return nil
}

// GetByID returns the item regardless of publish state.
func (r *newsStore) GetByID(_ context.Context, id int) (*domain.News, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.news[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

// ListPublished returns published items sorted by publish date, newest
// first. Items sharing a publish date come back in insertion order, so
// the slice is put in id order before the stable date sort.
func (r *newsStore) ListPublished(_ context.Context) ([]domain.News, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.News, 0, len(s.news))
	for _, item := range s.news {
		if item.IsPublished {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedDate.After(items[j].PublishedDate)
	})
	return items, nil
}
