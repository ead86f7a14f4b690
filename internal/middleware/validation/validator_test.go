package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(Middleware(Config{Logger: zap.NewNop(), MaxContacts: 2}))
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) }
	app.Put("/api/v1/contacts", ok)
	app.Put("/api/v1/profile", ok)
	app.Post("/api/v1/alerts", ok)
	app.Post("/api/v1/incidents", ok)
	app.Post("/api/v1/incidents/:id/stop", ok)
	app.Get("/api/v1/contacts", ok)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestMiddleware(t *testing.T) {
	app := newApp()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"get passes", "GET", "/api/v1/contacts", "", fiber.StatusNoContent},
		{"contacts ok", "PUT", "/api/v1/contacts", `{"contacts":[{"name":"Ana","phoneNumber":"5551234567"}]}`, fiber.StatusNoContent},
		{"too many contacts", "PUT", "/api/v1/contacts", `{"contacts":[{},{},{}]}`, fiber.StatusBadRequest},
		{"script in name", "PUT", "/api/v1/contacts", `{"contacts":[{"name":"<script>x"}]}`, fiber.StatusBadRequest},
		{"bad email", "PUT", "/api/v1/contacts", `{"contacts":[{"name":"Ana","email":"nope"}]}`, fiber.StatusBadRequest},
		{"malformed json", "PUT", "/api/v1/contacts", `{`, fiber.StatusBadRequest},
		{"profile ok", "PUT", "/api/v1/profile", `{"userName":"Maria"}`, fiber.StatusNoContent},
		{"alert ok", "POST", "/api/v1/alerts", `{"location":{"latitude":34.05,"longitude":-118.24}}`, fiber.StatusNoContent},
		{"alert without location", "POST", "/api/v1/alerts", `{}`, fiber.StatusBadRequest},
		{"alert empty body", "POST", "/api/v1/alerts", "", fiber.StatusBadRequest},
		{"alert latitude out of range", "POST", "/api/v1/alerts", `{"location":{"latitude":91,"longitude":0}}`, fiber.StatusBadRequest},
		{"incident without location", "POST", "/api/v1/incidents", `{"userId":"u1"}`, fiber.StatusNoContent},
		{"incident longitude out of range", "POST", "/api/v1/incidents", `{"location":{"latitude":0,"longitude":181}}`, fiber.StatusBadRequest},
		{"stop empty body", "POST", "/api/v1/incidents/abc/stop", "", fiber.StatusNoContent},
		{"stop blob url", "POST", "/api/v1/incidents/abc/stop", `{"recordingUrl":"blob:https://app.example.com/1f2e","type":"video"}`, fiber.StatusNoContent},
		{"stop bad url", "POST", "/api/v1/incidents/abc/stop", `{"recordingUrl":"ftp://x/y"}`, fiber.StatusBadRequest},
		{"stop bad type", "POST", "/api/v1/incidents/abc/stop", `{"type":"hologram"}`, fiber.StatusBadRequest},
		{"stop negative duration", "POST", "/api/v1/incidents/abc/stop", `{"duration":-1}`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, send(t, app, tt.method, tt.path, tt.body))
		})
	}
}

func TestMiddlewareRejectsNonJSON(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/api/v1/alerts", strings.NewReader("lat=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
}
