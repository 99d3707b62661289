package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/news-service/internal/api/dto"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/service"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	cred, err := h.auth.Register(c.UserContext(), req.UserID, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"userId":    cred.UserID,
			"createdAt": cred.CreatedAt,
		},
	})
}

// Login handles POST /api/v1/auth/login. The response body always has
// the {message, token} shape; token is null on failure. A new response
// value is built on every call.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.UserID, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrStoreUnavailable):
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(dto.LoginResponse{Message: err.Error(), Token: nil})
	}

	return c.JSON(dto.LoginResponse{Message: "user successfully logged in", Token: &token})
}
