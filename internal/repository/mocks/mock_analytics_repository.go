package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Create(ctx context.Context, ev model.AnalyticsEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) CountByType(ctx context.Context, eventType string) (int64, error) {
	args := m.Called(ctx, eventType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAnalyticsRepository) RecentVisits(ctx context.Context, limit int) ([]model.RecentVisit, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecentVisit), args.Error(1)
}

func (m *MockAnalyticsRepository) TopPages(ctx context.Context, limit int) ([]model.PageCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PageCount), args.Error(1)
}
