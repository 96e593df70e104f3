package persistence

import (
	"context"
	"sort"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
)

type userStore struct {
	store *Store
}

// NewUserRepository returns a memory-backed implementation.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userStore{store: store}
}

// Create checks username and email uniqueness and inserts under one lock,
// so concurrent registrations with colliding identifiers cannot both pass.
func (r *userStore) Create(_ context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = s.allocUserID()
	user.CreatedAt = now()
	s.users[user.ID] = *user
	return nil
}

func (r *userStore) GetByID(_ context.Context, id int) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns users in insertion order, optionally filtered by type.
// An empty userType means no filter.
func (r *userStore) List(_ context.Context, userType domain.UserType) ([]domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		if userType != "" && user.UserType != userType {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
