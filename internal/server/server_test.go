package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/config"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
	"github.com/kayumanis/furniture-order-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routes func(r fiber.Router)

func (f routes) MapRoutes(r fiber.Router) { f(r) }

func noRoutes(fiber.Router) {}

func newTestServer(t *testing.T, orders routes) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{HTTPPort: "0", BodyLimit: 1024},
		Upload: config.UploadConfig{Dir: dir, URLPrefix: "/uploads-furniture"},
	}
	srv := New(cfg, logger.NewNop(), Handlers{
		Products: routes(noRoutes),
		Folders:  routes(noRoutes),
		Buyers:   routes(noRoutes),
		Orders:   orders,
	})
	return srv, dir
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body io.Reader) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t, routes(noRoutes))

	code, body := doJSON(t, srv.App(), "GET", "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t, routes(noRoutes))

	code, body := doJSON(t, srv.App(), "GET", "/api/nothing/here", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "API endpoint not found", body["error"])
}

func TestServer_ErrorMapping(t *testing.T) {
	srv, _ := newTestServer(t, func(r fiber.Router) {
		r.Get("/validation", func(c *fiber.Ctx) error {
			return apperr.Validation("Name is required")
		})
		r.Get("/missing", func(c *fiber.Ctx) error {
			return apperr.NotFound("Order not found")
		})
		r.Get("/referenced", func(c *fiber.Ctx) error {
			return apperr.Referenced("Cannot delete buyer")
		})
		r.Get("/internal", func(c *fiber.Ctx) error {
			return apperr.Internal("fetch orders", errors.New("connection refused"))
		})
		r.Get("/plain", func(c *fiber.Ctx) error {
			return errors.New("boom")
		})
		r.Get("/fiber", func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusMethodNotAllowed, "nope")
		})
	})

	tests := []struct {
		path string
		code int
		msg  string
	}{
		{"/api/orders/validation", 400, "Name is required"},
		{"/api/orders/missing", 404, "Order not found"},
		{"/api/orders/referenced", 400, "Cannot delete buyer"},
		{"/api/orders/internal", 500, "Failed to fetch orders"},
		{"/api/orders/plain", 500, "Internal server error"},
		{"/api/orders/fiber", 405, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			code, body := doJSON(t, srv.App(), "GET", tt.path, nil)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}

func TestServer_ServesUploads(t *testing.T) {
	srv, dir := newTestServer(t, routes(noRoutes))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chair.png"), []byte("png-bytes"), 0o644))

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/uploads-furniture/chair.png", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", string(data))
}

func TestCORSOrigins(t *testing.T) {
	assert.Equal(t, "*", corsOrigins(""))
	assert.Equal(t, "*", corsOrigins("  "))
	assert.Equal(t, "http://localhost:3000", corsOrigins("http://localhost:3000"))
}
