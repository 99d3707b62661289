package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/news-service/internal/api/dto"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/service"
)

// NewsHandler exposes per-user news endpoints.
type NewsHandler struct {
	news *service.NewsService
}

// NewNewsHandler constructs handler.
func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{news: newsService}
}

func newsFromRequest(req dto.NewsRequest) domain.News {
	item := domain.News{
		ID:          req.ID,
		Author:      req.Author,
		Title:       req.Title,
		Content:     req.Content,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	if req.Reminder != nil {
		reminder := &domain.Reminder{ID: req.Reminder.ID}
		if req.Reminder.Schedule != nil {
			reminder.Schedule = *req.Reminder.Schedule
		} else {
			reminder.Schedule = time.Time{}
		}
		item.Reminder = reminder
	}
	return item
}

// Create handles POST /api/v1/news/:userId.
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.news.AddNews(c.UserContext(), c.Params("userId"), newsFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}

// List handles GET /api/v1/news/:userId.
func (h *NewsHandler) List(c *fiber.Ctx) error {
	items, err := h.news.ListNews(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/v1/news/:userId/:newsId.
func (h *NewsHandler) Get(c *fiber.Ctx) error {
	newsID, err := c.ParamsInt("newsId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid news id")
	}

	item, err := h.news.GetNews(c.UserContext(), c.Params("userId"), newsID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Update handles PUT /api/v1/news/:userId/:newsId.
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	newsID, err := c.ParamsInt("newsId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid news id")
	}

	var req dto.NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.news.UpdateNews(c.UserContext(), c.Params("userId"), newsID, newsFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": item})
}

// Delete handles DELETE /api/v1/news/:userId/:newsId.
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	newsID, err := c.ParamsInt("newsId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid news id")
	}

	if err := h.news.DeleteNews(c.UserContext(), c.Params("userId"), newsID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/v1/news/:userId.
func (h *NewsHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.news.DeleteAllNews(c.UserContext(), c.Params("userId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
