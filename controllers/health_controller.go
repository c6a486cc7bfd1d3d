package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventstats/logging"
)

// Health reports whether the database answers a ping.
func (ctl *Controller) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := ctl.store.Ping(ctx); err != nil {
		logging.Warn().Err(err).Msg("health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
