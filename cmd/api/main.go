package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/news-service/internal/api/http"
	"github.com/spec-kit/news-service/internal/api/http/handlers"
	"github.com/spec-kit/news-service/internal/auth"
	"github.com/spec-kit/news-service/internal/config"
	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/events"
	"github.com/spec-kit/news-service/internal/observability"
	"github.com/spec-kit/news-service/internal/persistence"
	"github.com/spec-kit/news-service/internal/repository"
	"github.com/spec-kit/news-service/internal/service"
	"github.com/spec-kit/news-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store docstore.Store
		pg    *persistence.Postgres
		rdb   *persistence.Redis
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		store = docstore.NewPostgresStore(pg.PoolHandle())
	case config.StoreBackendRedis:
		rdb = persistence.NewRedis(cfg.Redis, logger)
		defer rdb.Close()
		store = docstore.NewRedisStore(rdb.Client)
	default:
		logger.Warn("using in-memory store; data is not persisted")
		store = docstore.NewMemoryStore()
	}

	credentialRepo := repository.NewCredentialRepository(store)
	newsRepo := repository.NewUserNewsRepository(store)
	sourceRepo := repository.NewNewsSourceRepository(store)
	profileRepo := repository.NewUserProfileRepository(store)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, credentialRepo)
	newsService := service.NewNewsService(newsRepo, dispatcher, logger)
	sourceService := service.NewSourceService(sourceRepo, dispatcher)
	profileService := service.NewProfileService(profileRepo)

	reminderService := service.NewReminderService(dispatcher, logger)
	worker.StartReminderWorker(reminderService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), credentialRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rdb),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		News:           handlers.NewNewsHandler(newsService),
		Sources:        handlers.NewSourcesHandler(sourceService),
		Profiles:       handlers.NewProfilesHandler(profileService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
