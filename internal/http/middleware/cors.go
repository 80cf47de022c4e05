package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// allMethods is every method a browser may ask for in a preflight.
const allMethods = "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS"

// CORS allows credentialed cross-origin requests from an explicit origin list.
// Any method is allowed and requested headers are echoed back.
func CORS(origins []string) (fiber.Handler, error) {
	if len(origins) == 0 {
		return nil, errors.New("cors: at least one origin is required")
	}
	for _, o := range origins {
		if o == "*" {
			return nil, errors.New("cors: wildcard origin cannot be combined with credentials")
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     allMethods,
		AllowCredentials: true,
		ExposeHeaders:    RequestIDHeader,
	}), nil
}
