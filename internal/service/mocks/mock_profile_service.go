package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context) *model.Profile {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Profile)
}

func (m *MockProfileService) Upsert(ctx context.Context, upd model.ProfileUpdate) bool {
	args := m.Called(ctx, upd)
	return args.Bool(0)
}
