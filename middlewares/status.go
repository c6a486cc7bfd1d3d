package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusOf is the status the error handler will send for err; the response
// is not written yet when a handler returns an error.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
