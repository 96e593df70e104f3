package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/skills-registry/internal/auth"
	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/events"
	"github.com/spec-kit/skills-registry/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies bundles requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(bcryptCost int, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: bcryptCost,
	}
}

// RegisterInput describes a registration after request validation.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Phone    string
	District string
	UserType domain.UserType
}

// Register creates a new account. Uniqueness of username and email is
// enforced by the repository insert itself, so concurrent registrations
// with the same identifiers cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	userType := in.UserType
	if userType == "" {
		userType = domain.UserTypeCitizen
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		District:     in.District,
		UserType:     userType,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		Timestamp: time.Now(),
		Payload: events.UserRegisteredPayload{
			UserID:   user.ID,
			District: user.District,
			UserType: user.UserType,
		},
	})
	return user, nil
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser fetches a user by id.
func (s *AuthService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Users lists accounts, optionally filtered by type.
func (s *AuthService) Users(ctx context.Context, userType domain.UserType) ([]domain.User, error) {
	return s.users.List(ctx, userType)
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
