package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureViewerID identifies the spectator from the X-Viewer-ID header or the
// viewerId query parameter, assigning a fresh id when neither is present.
func EnsureViewerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("viewerID") != nil {
			return c.Next()
		}

		viewerID := c.Get("X-Viewer-ID")
		if viewerID == "" {
			viewerID = c.Query("viewerId")
		}
		if viewerID == "" {
			viewerID = uuid.New().String()
		}

		c.Locals("viewerID", viewerID)
		c.Set("X-Viewer-ID", viewerID)
		return c.Next()
	}
}
