package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/api/dto"
	"github.com/spec-kit/skills-registry/internal/auth"
	"github.com/spec-kit/skills-registry/internal/config"
	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
	"github.com/spec-kit/skills-registry/internal/service"
	apperrors "github.com/spec-kit/skills-registry/pkg/util"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *auth.SessionManager
	session     config.SessionConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions *auth.SessionManager, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, session: session}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if issues := req.Validate(); len(issues) > 0 {
		return apperrors.NewValidationError("Validation error", issues)
	}

	user, err := h.authService.Register(c.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		District: req.District,
		UserType: domain.UserType(req.UserType),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return apperrors.NewValidationError("Username already exists", nil)
		case errors.Is(err, repository.ErrDuplicateEmail):
			return apperrors.NewValidationError("Email already exists", nil)
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(user)
}

// Login handles POST /api/login. Success binds the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if issues := req.Validate(); len(issues) > 0 {
		return apperrors.NewValidationError("Validation error", issues)
	}

	user, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("Invalid username or password")
		}
		return apperrors.MapError(err)
	}

	token := h.sessions.Create(user.ID)
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.session.TTL()),
		Secure:   h.session.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{Message: "Login successful", User: user})
}

// Logout handles POST /api/logout. Logging out an anonymous session is not
// an error.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.session.CookieName); token != "" {
		h.sessions.Destroy(token)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(dto.MessageResponse{Message: "Logout successful"})
}

// CurrentUser handles GET /api/user.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Not authenticated")
	}
	return c.JSON(principal.User)
}

// ListUsers handles GET /api/users, filtered by the optional userType
// query parameter.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	userType := domain.UserType(c.Query("userType"))
	if userType != "" && !domain.ValidUserType(userType) {
		return apperrors.NewValidationError("Invalid user type", nil)
	}

	users, err := h.authService.Users(c.Context(), userType)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(users)
}
