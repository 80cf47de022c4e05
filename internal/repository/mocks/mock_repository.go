package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"soscrise/internal/model"
)

type MockLister[T any] struct {
	mock.Mock
}

func (m *MockLister[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) List(ctx context.Context) ([]model.GuideSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GuideSummary), args.Error(1)
}

func (m *MockGuideRepository) FindByID(ctx context.Context, id int64) (*model.GuideDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GuideDetail), args.Error(1)
}
