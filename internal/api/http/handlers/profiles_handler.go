package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/news-service/internal/api/dto"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/service"
)

// ProfilesHandler exposes user-profile endpoints.
type ProfilesHandler struct {
	profiles *service.ProfileService
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(profileService *service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{profiles: profileService}
}

func profileFromRequest(req dto.ProfileRequest) domain.UserProfile {
	return domain.UserProfile{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Contact:   req.Contact,
		Email:     req.Email,
	}
}

// Register handles POST /api/v1/user.
func (h *ProfilesHandler) Register(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.UserID == "" {
		return fiber.NewError(http.StatusBadRequest, "userId required")
	}

	profile, err := h.profiles.Register(c.UserContext(), profileFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": profile})
}

// Get handles GET /api/v1/user/:userId.
func (h *ProfilesHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profiles.Get(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// Update handles PUT /api/v1/user/:userId.
func (h *ProfilesHandler) Update(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.profiles.Update(c.UserContext(), c.Params("userId"), profileFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profile})
}

// Delete handles DELETE /api/v1/user/:userId.
func (h *ProfilesHandler) Delete(c *fiber.Ctx) error {
	if err := h.profiles.Delete(c.UserContext(), c.Params("userId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
