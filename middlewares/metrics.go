package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventstats/metrics"
)

// Metrics counts requests and measures their latency. The path label is the
// matched route pattern, so /api/events/7/dates and /api/events/8/dates share
// one series.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		method := c.Method()
		path := c.Route().Path
		status := statusOf(c, err)
		if status == fiber.StatusNotFound && path == "/" && c.Path() != "/" {
			path = "unmatched"
		}

		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

		return err
	}
}
