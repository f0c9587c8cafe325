package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockVisualizationService struct {
	mock.Mock
}

func (m *MockVisualizationService) List(ctx context.Context) []model.Visualization {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Visualization)
}

func (m *MockVisualizationService) Create(ctx context.Context, in model.VisualizationCreate) (string, bool) {
	args := m.Called(ctx, in)
	return args.String(0), args.Bool(1)
}
