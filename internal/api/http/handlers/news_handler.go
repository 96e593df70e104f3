package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/skills-registry/internal/api/dto"
	"github.com/spec-kit/skills-registry/internal/repository"
	"github.com/spec-kit/skills-registry/internal/service"
	apperrors "github.com/spec-kit/skills-registry/pkg/util"
)

// NewsHandler exposes the news feed endpoints.
type NewsHandler struct {
	news *service.NewsService
}

// NewNewsHandler constructs handler.
func NewNewsHandler(news *service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// List handles GET /api/news, returning published items newest first.
func (h *NewsHandler) List(c *fiber.Ctx) error {
	items, err := h.news.Feed(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(items)
}

// GetByID handles GET /api/news/:id.
func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Invalid news ID", nil)
	}

	item, err := h.news.ByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("News")
		}
		return apperrors.MapError(err)
	}
	return c.JSON(item)
}

// Create handles POST /api/news. Government role required.
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.NewsCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if issues := req.Validate(); len(issues) > 0 {
		return apperrors.NewValidationError("Validation error", issues)
	}

	item, err := h.news.Publish(c.Context(), service.NewsInput{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}
