package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/news-service/internal/api/dto"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/service"
)

// SourcesHandler exposes news-source endpoints.
type SourcesHandler struct {
	sources *service.SourceService
}

// NewSourcesHandler constructs handler.
func NewSourcesHandler(sourceService *service.SourceService) *SourcesHandler {
	return &SourcesHandler{sources: sourceService}
}

func sourceFromRequest(req dto.SourceRequest) domain.NewsSource {
	return domain.NewsSource{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	}
}

// Create handles POST /api/v1/newssource.
func (h *SourcesHandler) Create(c *fiber.Ctx) error {
	var req dto.SourceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	source, err := h.sources.Create(c.UserContext(), sourceFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": source})
}

// Get handles GET /api/v1/newssource/:sourceId.
func (h *SourcesHandler) Get(c *fiber.Ctx) error {
	sourceID, err := c.ParamsInt("sourceId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid source id")
	}

	source, err := h.sources.GetByID(c.UserContext(), sourceID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": source})
}

// ListByCreator handles GET /api/v1/newssource/user/:userId. A creator
// with no sources gets an empty list, not an error.
func (h *SourcesHandler) ListByCreator(c *fiber.Ctx) error {
	sources, err := h.sources.ListByCreator(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sources})
}

// Update handles PUT /api/v1/newssource/:sourceId.
func (h *SourcesHandler) Update(c *fiber.Ctx) error {
	sourceID, err := c.ParamsInt("sourceId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid source id")
	}

	var req dto.SourceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	source, err := h.sources.Update(c.UserContext(), sourceID, sourceFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": source})
}

// Delete handles DELETE /api/v1/newssource/:sourceId.
func (h *SourcesHandler) Delete(c *fiber.Ctx) error {
	sourceID, err := c.ParamsInt("sourceId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid source id")
	}

	if err := h.sources.Delete(c.UserContext(), sourceID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
