package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, typeFilter string) []model.Project {
	args := m.Called(ctx, typeFilter)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Project)
}

func (m *MockProjectService) Create(ctx context.Context, in model.ProjectCreate) (string, bool) {
	args := m.Called(ctx, in)
	return args.String(0), args.Bool(1)
}

func (m *MockProjectService) Update(ctx context.Context, id string, upd model.ProjectUpdate) bool {
	args := m.Called(ctx, id, upd)
	return args.Bool(0)
}

func (m *MockProjectService) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}
