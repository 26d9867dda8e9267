package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health handles GET /health. It reports static service metadata and the
// current time; it has no dependencies and never fails.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}
