package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health returns the liveness/readiness handler for a service.
func Health(service, environment string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "ok",
			"service":     service,
			"environment": environment,
			"time":        time.Now().UTC(),
		})
	}
}
