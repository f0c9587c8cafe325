package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockVisualizationRepository struct {
	mock.Mock
}

func (m *MockVisualizationRepository) ListActive(ctx context.Context) ([]model.Visualization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Visualization), args.Error(1)
}

func (m *MockVisualizationRepository) Create(ctx context.Context, v model.Visualization) (string, error) {
	args := m.Called(ctx, v)
	return args.String(0), args.Error(1)
}
