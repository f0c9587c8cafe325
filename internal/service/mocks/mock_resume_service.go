package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Download(ctx context.Context, meta service.RequestMeta) (model.ResumeInfo, bool) {
	args := m.Called(ctx, meta)
	return args.Get(0).(model.ResumeInfo), args.Bool(1)
}
