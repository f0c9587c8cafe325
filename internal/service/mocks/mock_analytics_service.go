package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) RecordVisit(ctx context.Context, in model.AnalyticsCreate, meta service.RequestMeta) bool {
	args := m.Called(ctx, in, meta)
	return args.Bool(0)
}

func (m *MockAnalyticsService) RecordDownload(ctx context.Context, page string, meta service.RequestMeta) bool {
	args := m.Called(ctx, page, meta)
	return args.Bool(0)
}

func (m *MockAnalyticsService) Stats(ctx context.Context) model.AnalyticsStats {
	args := m.Called(ctx)
	return args.Get(0).(model.AnalyticsStats)
}
