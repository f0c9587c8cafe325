package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in model.ContactCreate, meta service.RequestMeta) (string, bool) {
	args := m.Called(ctx, in, meta)
	return args.String(0), args.Bool(1)
}

func (m *MockContactService) List(ctx context.Context) []model.ContactMessage {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.ContactMessage)
}

func (m *MockContactService) MarkRead(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}
