package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
	apperrors "github.com/spec-kit/skills-registry/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller resolved from the session
// cookie. An absent principal means the request is anonymous.
type Principal struct {
	User *domain.User
}

// SessionMiddleware resolves the session cookie into a principal on every
// request. Resolution never rejects a request by itself: a missing cookie,
// an unknown or expired session, or a user id that no longer resolves all
// leave the request anonymous. Route guards decide whether anonymous is
// acceptable.
type SessionMiddleware struct {
	sessions   *SessionManager
	users      repository.UserRepository
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions *SessionManager, users repository.UserRepository, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, users: users, cookieName: cookieName}
}

// Handle deserializes the session-stored user id into a full principal.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		return c.Next()
	}

	userID, ok := m.sessions.Resolve(token)
	if !ok {
		return c.Next()
	}

	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Store no longer knows the id; the session is treated as
			// invalid and the request proceeds anonymously.
			m.sessions.Destroy(token)
			return c.Next()
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{User: user})
	return c.Next()
}

// CookieName returns the configured session cookie name.
func (m *SessionMiddleware) CookieName() string {
	return m.cookieName
}

// PrincipalFromContext retrieves the authenticated principal, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
