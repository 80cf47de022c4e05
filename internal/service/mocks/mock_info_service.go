package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"soscrise/internal/model"
)

type MockInfoService struct {
	mock.Mock
}

func (m *MockInfoService) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockInfoService) ListNews(ctx context.Context) ([]model.News, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.News), args.Error(1)
}

func (m *MockInfoService) ListSupportPoints(ctx context.Context) ([]model.SupportPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupportPoint), args.Error(1)
}

func (m *MockInfoService) ListOrganizations(ctx context.Context) ([]model.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockInfoService) ListSupplyNeeds(ctx context.Context) ([]model.SupplyNeed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SupplyNeed), args.Error(1)
}

func (m *MockInfoService) ListVolunteerJobs(ctx context.Context) ([]model.VolunteerJob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VolunteerJob), args.Error(1)
}

func (m *MockInfoService) ListGuides(ctx context.Context) ([]model.GuideSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GuideSummary), args.Error(1)
}

func (m *MockInfoService) GetGuide(ctx context.Context, id int64) (*model.GuideDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideDetail), args.Error(1)
}
