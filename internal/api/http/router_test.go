package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/news-service/internal/api/http/handlers"
	"github.com/spec-kit/news-service/internal/auth"
	"github.com/spec-kit/news-service/internal/config"
	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/events"
	"github.com/spec-kit/news-service/internal/observability"
	"github.com/spec-kit/news-service/internal/repository"
	"github.com/spec-kit/news-service/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret",
			AccessTokenTTLMilli: 300000,
			BcryptCost:          4,
		},
	}

	store := docstore.NewMemoryStore()
	credentialRepo := repository.NewCredentialRepository(store)
	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()

	authService := service.NewAuthService(cfg, credentialRepo)
	newsService := service.NewNewsService(repository.NewUserNewsRepository(store), dispatcher, logger)
	sourceService := service.NewSourceService(repository.NewNewsSourceRepository(store), dispatcher)
	profileService := service.NewProfileService(repository.NewUserProfileRepository(store))

	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("news-service", "test", nil, nil),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		News:           handlers.NewNewsHandler(newsService),
		Sources:        handlers.NewSourcesHandler(sourceService),
		Profiles:       handlers.NewProfilesHandler(profileService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager(), credentialRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp, parsed
}

func TestLogin_FailureShape(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		`{"userId":"ghost","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// body keeps the {message, token} shape with a null token
	require.Contains(t, body, "token")
	assert.Nil(t, body["token"])
	assert.NotEmpty(t, body["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		`{"userId":"","password":"pass"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, body["token"])
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"userId":"john","password":"pass123"}`, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"userId":"john","password":"other"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		`{"userId":"john","password":"pass123"}`, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user successfully logged in", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestNewsRoutes_RequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/news/john", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNewsFlow_EndToEnd(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"userId":"john","password":"pass123"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		`{"userId":"john","password":"pass123"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/news/john",
		`{"newsId":1,"title":"hello","content":"world"}`, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/news/john",
		`{"newsId":1,"title":"dup"}`, token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/news/john", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/news/john/1", "", token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSourceRoutes(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register",
		`{"userId":"john","password":"pass123"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		`{"userId":"john","password":"pass123"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/newssource/",
		`{"newsSourceId":1,"newsSourceName":"reuters","createdBy":"john"}`, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/newssource/user/nobody", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}
