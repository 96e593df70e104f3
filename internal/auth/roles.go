package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/domain"
	apperrors "github.com/spec-kit/skills-registry/pkg/util"
)

// RequireAuth ensures the request carries an authenticated principal.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("Not authenticated")
		}
		return c.Next()
	}
}

// RequireUserType ensures the principal has one of the allowed account
// types. It assumes RequireAuth ran earlier in the chain.
func RequireUserType(allowed ...domain.UserType) fiber.Handler {
	allowedSet := make(map[domain.UserType]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("Not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.UserType]; !exists {
			return apperrors.NewForbidden("Unauthorized")
		}
		return c.Next()
	}
}
