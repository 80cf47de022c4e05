package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"soscrise/internal/http/middleware"
	"soscrise/internal/service"
)

// Deps are the collaborators the HTTP routes need.
type Deps struct {
	DB      *sql.DB
	Service service.InfoService
	Log     *zap.Logger
	// Gatherer backs /metrics. The endpoint is not registered when nil.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	app.Get("/", Root())
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get(middleware.MetricsPath, Metrics(d.Gatherer))
	}

	api := app.Group("/api")
	api.Get("/alerts", ListAlerts(d.Service, log))
	api.Get("/news", ListNews(d.Service, log))
	api.Get("/support-points", ListSupportPoints(d.Service, log))
	api.Get("/organizations", ListOrganizations(d.Service, log))
	api.Get("/supply-needs", ListSupplyNeeds(d.Service, log))
	api.Get("/volunteer-opportunities", ListVolunteerOpportunities(d.Service, log))
	api.Get("/preparedness-guides", ListGuides(d.Service, log))
	api.Get("/preparedness-guides/:id", GetGuide(d.Service, log))
}
