package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, upd model.ProfileUpdate) error {
	args := m.Called(ctx, upd)
	return args.Error(0)
}
