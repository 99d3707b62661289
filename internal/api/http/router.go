package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/news-service/internal/api/http/handlers"
	"github.com/spec-kit/news-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	News           *handlers.NewsHandler
	Sources        *handlers.SourcesHandler
	Profiles       *handlers.ProfilesHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Get)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	news := api.Group("/news", cfg.AuthMiddleware.Handle)
	news.Post("/:userId", cfg.News.Create)
	news.Get("/:userId", cfg.News.List)
	news.Delete("/:userId", cfg.News.DeleteAll)
	news.Get("/:userId/:newsId", cfg.News.Get)
	news.Put("/:userId/:newsId", cfg.News.Update)
	news.Delete("/:userId/:newsId", cfg.News.Delete)

	sources := api.Group("/newssource", cfg.AuthMiddleware.Handle)
	sources.Post("/", cfg.Sources.Create)
	sources.Get("/user/:userId", cfg.Sources.ListByCreator)
	sources.Get("/:sourceId", cfg.Sources.Get)
	sources.Put("/:sourceId", cfg.Sources.Update)
	sources.Delete("/:sourceId", cfg.Sources.Delete)

	profiles := api.Group("/user", cfg.AuthMiddleware.Handle)
	profiles.Post("/", cfg.Profiles.Register)
	profiles.Get("/:userId", cfg.Profiles.Get)
	profiles.Put("/:userId", cfg.Profiles.Update)
	profiles.Delete("/:userId", cfg.Profiles.Delete)
}
