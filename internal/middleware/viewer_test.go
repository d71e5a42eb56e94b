package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newViewerApp() *fiber.App {
	app := fiber.New()
	app.Use(EnsureViewerID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("viewerID").(string))
	})
	return app
}

func readBody(t *testing.T, app *fiber.App, target string, header string) string {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	if header != "" {
		req.Header.Set("X-Viewer-ID", header)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestEnsureViewerIDFromHeader(t *testing.T) {
	if got := readBody(t, newViewerApp(), "/", "viewer-7"); got != "viewer-7" {
		t.Fatalf("viewer id = %q", got)
	}
}

func TestEnsureViewerIDFromQuery(t *testing.T) {
	if got := readBody(t, newViewerApp(), "/?viewerId=viewer-9", ""); got != "viewer-9" {
		t.Fatalf("viewer id = %q", got)
	}
}

func TestEnsureViewerIDGenerated(t *testing.T) {
	got := readBody(t, newViewerApp(), "/", "")
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", got, err)
	}
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:gameId", EnsureViewerID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/abc", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}
