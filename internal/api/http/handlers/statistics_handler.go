package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/api/dto"
	"github.com/spec-kit/skills-registry/internal/service"
	apperrors "github.com/spec-kit/skills-registry/pkg/util"
)

// StatisticsHandler exposes aggregate statistics endpoints.
type StatisticsHandler struct {
	stats *service.StatisticsService
}

// NewStatisticsHandler constructs handler.
func NewStatisticsHandler(stats *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

// List handles GET /api/statistics.
func (h *StatisticsHandler) List(c *fiber.Ctx) error {
	stats, err := h.stats.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(stats)
}

// ByCategory handles GET /api/statistics/:category.
func (h *StatisticsHandler) ByCategory(c *fiber.Ctx) error {
	stats, err := h.stats.ByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(stats)
}

// Create handles POST /api/statistics. Government role required.
func (h *StatisticsHandler) Create(c *fiber.Ctx) error {
	var req dto.StatisticCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if issues := req.Validate(); len(issues) > 0 {
		return apperrors.NewValidationError("Validation error", issues)
	}

	stat, err := h.stats.Create(c.Context(), service.StatisticInput{
		Category: req.Category,
		Value:    req.Value,
		Region:   req.Region,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(stat)
}
