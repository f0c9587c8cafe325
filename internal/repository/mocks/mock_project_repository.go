package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context, typeFilter string) ([]model.Project, error) {
	args := m.Called(ctx, typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, p model.Project) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, id string, upd model.ProjectUpdate) (bool, error) {
	args := m.Called(ctx, id, upd)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
