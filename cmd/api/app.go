package main

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"soscrise/docs"
	"soscrise/internal/config"
	handlers "soscrise/internal/http/handler"
	"soscrise/internal/http/middleware"
	"soscrise/internal/service"
)

type appDeps struct {
	Config   *config.AppConfig
	DB       *sql.DB
	Service  service.InfoService
	Log      *zap.Logger
	Registry *prometheus.Registry
}

// newApp assembles the Fiber app: middleware chain, API routes and Swagger UI.
func newApp(d appDeps) (*fiber.App, error) {
	corsHandler, err := middleware.CORS(d.Config.CORSOrigins)
	if err != nil {
		return nil, fmt.Errorf("configure cors: %w", err)
	}

	metrics, err := middleware.NewPrometheusMiddleware(d.Registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "soscrise",
		ErrorHandler: handlers.ErrorHandler(d.Log),
	})

	app.Use(recover.New())
	// CORS answers preflights before anything else touches the request.
	app.Use(corsHandler)
	app.Use(middleware.RequestID())
	app.Use(middleware.Tracing())
	app.Use(middleware.Logger(d.Log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       d.DB,
		Service:  d.Service,
		Log:      d.Log,
		Gatherer: d.Registry,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}
