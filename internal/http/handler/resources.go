package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"soscrise/internal/service"
)

// listHandler serves a whole collection as a JSON array. The body is never null.
func listHandler[T any](log *zap.Logger, resource string, list func(context.Context) ([]T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := list(c.UserContext())
		if err != nil {
			return internalError(c, log, resource, err)
		}
		if items == nil {
			items = []T{}
		}
		return writeJSON(c, fiber.StatusOK, items)
	}
}

// ListAlerts godoc
// @Summary List alerts
// @Description Every alert, most recent first (date, then time).
// @Tags alerts
// @Produce json
// @Success 200 {array} model.Alert
// @Failure 500 {object} errorPayload
// @Router /api/alerts [get]
func ListAlerts(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "alerts", svc.ListAlerts)
}

// ListNews godoc
// @Summary List news
// @Description Every news item, most recent date first.
// @Tags news
// @Produce json
// @Success 200 {array} model.News
// @Failure 500 {object} errorPayload
// @Router /api/news [get]
func ListNews(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "news", svc.ListNews)
}

// ListSupportPoints godoc
// @Summary List support points
// @Description Every support point ordered by name.
// @Tags support-points
// @Produce json
// @Success 200 {array} model.SupportPoint
// @Failure 500 {object} errorPayload
// @Router /api/support-points [get]
func ListSupportPoints(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "support_points", svc.ListSupportPoints)
}

// ListOrganizations godoc
// @Summary List organizations
// @Description Every organization accepting donations, ordered by name.
// @Tags organizations
// @Produce json
// @Success 200 {array} model.Organization
// @Failure 500 {object} errorPayload
// @Router /api/organizations [get]
func ListOrganizations(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "organizations", svc.ListOrganizations)
}

// ListSupplyNeeds godoc
// @Summary List supply needs
// @Tags supply-needs
// @Produce json
// @Success 200 {array} model.SupplyNeed
// @Failure 500 {object} errorPayload
// @Router /api/supply-needs [get]
func ListSupplyNeeds(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "supply_needs", svc.ListSupplyNeeds)
}

// ListVolunteerOpportunities godoc
// @Summary List volunteer opportunities
// @Tags volunteer-opportunities
// @Produce json
// @Success 200 {array} model.VolunteerJob
// @Failure 500 {object} errorPayload
// @Router /api/volunteer-opportunities [get]
func ListVolunteerOpportunities(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "volunteer_jobs", svc.ListVolunteerJobs)
}

// ListGuides godoc
// @Summary List preparedness guides
// @Description Guide summaries without the markdown body.
// @Tags preparedness-guides
// @Produce json
// @Success 200 {array} model.GuideSummary
// @Failure 500 {object} errorPayload
// @Router /api/preparedness-guides [get]
func ListGuides(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return listHandler(log, "guides", svc.ListGuides)
}

// GetGuide godoc
// @Summary Get a preparedness guide
// @Tags preparedness-guides
// @Produce json
// @Param id path int true "Guide ID"
// @Success 200 {object} model.GuideDetail
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/preparedness-guides/{id} [get]
func GetGuide(svc service.InfoService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, detailInvalidGuideID)
		}

		guide, err := svc.GetGuide(c.UserContext(), int64(id))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, detailGuideNotFound)
			}
			return internalError(c, log, "guides", err)
		}
		return writeJSON(c, fiber.StatusOK, guide)
	}
}
