package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/api/dto"
	"github.com/spec-kit/skills-registry/internal/service"
	apperrors "github.com/spec-kit/skills-registry/pkg/util"
)

// SkillsHandler exposes skill submission and aggregation endpoints.
type SkillsHandler struct {
	skills *service.SkillService
}

// NewSkillsHandler constructs handler.
func NewSkillsHandler(skills *service.SkillService) *SkillsHandler {
	return &SkillsHandler{skills: skills}
}

// UserSkills handles GET /api/skills/user/:userId.
func (h *SkillsHandler) UserSkills(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return apperrors.NewValidationError("Invalid user ID", nil)
	}

	skills, err := h.skills.UserSkills(c.Context(), userID)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(skills)
}

// ByCategory handles GET /api/skills/category/:category.
func (h *SkillsHandler) ByCategory(c *fiber.Ctx) error {
	skills, err := h.skills.ByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(skills)
}

// Create handles POST /api/skills. The route requires an authenticated
// session.
func (h *SkillsHandler) Create(c *fiber.Ctx) error {
	var req dto.SkillCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if issues := req.Validate(); len(issues) > 0 {
		return apperrors.NewValidationError("Validation error", issues)
	}

	skill, err := h.skills.Add(c.Context(), service.SkillInput{
		UserID:            req.UserID,
		SkillName:         req.SkillName,
		Category:          req.Category,
		ProficiencyLevel:  req.ProficiencyLevel,
		YearsOfExperience: req.YearsOfExperience,
		Certifications:    req.Certifications,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(skill)
}

// Distribution handles GET /api/skills/distribution.
func (h *SkillsHandler) Distribution(c *fiber.Ctx) error {
	distribution, err := h.skills.Distribution(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(distribution)
}
