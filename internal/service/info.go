package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"soscrise/internal/model"
	"soscrise/internal/repository"
)

// ErrNotFound is returned when a requested guide does not exist.
var ErrNotFound = errors.New("guide not found")

// InfoService exposes the read-only crisis information collections.
type InfoService interface {
	ListAlerts(ctx context.Context) ([]model.Alert, error)
	ListNews(ctx context.Context) ([]model.News, error)
	ListSupportPoints(ctx context.Context) ([]model.SupportPoint, error)
	ListOrganizations(ctx context.Context) ([]model.Organization, error)
	ListSupplyNeeds(ctx context.Context) ([]model.SupplyNeed, error)
	ListVolunteerJobs(ctx context.Context) ([]model.VolunteerJob, error)
	ListGuides(ctx context.Context) ([]model.GuideSummary, error)

	// GetGuide returns the full guide or ErrNotFound.
	GetGuide(ctx context.Context, id int64) (*model.GuideDetail, error)
}

type infoService struct {
	repos repository.Repositories
}

// NewInfoService constructs a new InfoService over the given readers.
func NewInfoService(repos repository.Repositories) InfoService {
	return &infoService{repos: repos}
}

func (s *infoService) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	return listAll(ctx, "alerts", s.repos.Alerts)
}

func (s *infoService) ListNews(ctx context.Context) ([]model.News, error) {
	return listAll(ctx, "news", s.repos.News)
}

func (s *infoService) ListSupportPoints(ctx context.Context) ([]model.SupportPoint, error) {
	return listAll(ctx, "support points", s.repos.SupportPoints)
}

func (s *infoService) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	return listAll(ctx, "organizations", s.repos.Organizations)
}

func (s *infoService) ListSupplyNeeds(ctx context.Context) ([]model.SupplyNeed, error) {
	return listAll(ctx, "supply needs", s.repos.SupplyNeeds)
}

func (s *infoService) ListVolunteerJobs(ctx context.Context) ([]model.VolunteerJob, error) {
	return listAll(ctx, "volunteer jobs", s.repos.VolunteerJobs)
}

func (s *infoService) ListGuides(ctx context.Context) ([]model.GuideSummary, error) {
	return listAll[model.GuideSummary](ctx, "guides", s.repos.Guides)
}

// GetGuide looks up a guide by id. Ids are assigned by the store and always positive,
// so non-positive ids are reported as not found without a round-trip.
func (s *infoService) GetGuide(ctx context.Context, id int64) (*model.GuideDetail, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	g, err := s.repos.Guides.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get guide %d: %w", id, err)
	}
	return g, nil
}

func listAll[T any](ctx context.Context, resource string, l repository.Lister[T]) ([]T, error) {
	items, err := l.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
