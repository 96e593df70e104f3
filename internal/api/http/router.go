package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/api/http/handlers"
	"github.com/spec-kit/skills-registry/internal/auth"
	"github.com/spec-kit/skills-registry/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Skills     *handlers.SkillsHandler
	Statistics *handlers.StatisticsHandler
	News       *handlers.NewsHandler
	Session    *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes. The session middleware runs on every
// request and resolves the principal without ever rejecting; the guards on
// individual routes decide whether anonymous access is allowed.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.Session.Handle)

	api.Post("/register", cfg.Auth.Register)
	api.Post("/login", cfg.Auth.Login)
	api.Post("/logout", cfg.Auth.Logout)
	api.Get("/user", auth.RequireAuth(), cfg.Auth.CurrentUser)
	api.Get("/users", auth.RequireAuth(), auth.RequireUserType(domain.UserTypeGovernment), cfg.Auth.ListUsers)

	api.Get("/skills/distribution", cfg.Skills.Distribution)
	api.Get("/skills/user/:userId", cfg.Skills.UserSkills)
	api.Get("/skills/category/:category", cfg.Skills.ByCategory)
	api.Post("/skills", auth.RequireAuth(), cfg.Skills.Create)

	api.Get("/statistics", cfg.Statistics.List)
	api.Post("/statistics", auth.RequireAuth(), auth.RequireUserType(domain.UserTypeGovernment), cfg.Statistics.Create)
	api.Get("/statistics/:category", cfg.Statistics.ByCategory)

	api.Get("/news", cfg.News.List)
	api.Get("/news/:id", cfg.News.GetByID)
	api.Post("/news", auth.RequireAuth(), auth.RequireUserType(domain.UserTypeGovernment), cfg.News.Create)
}
