package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing starts a server span per request using the global tracer provider.
// Probe and scrape endpoints are skipped.
func Tracing() fiber.Handler {
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			switch c.Path() {
			case MetricsPath, "/health", "/healthz":
				return true
			}
			return false
		}),
	)
}
