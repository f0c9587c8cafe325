package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	repoMocks "portfolioapi/internal/repository/mocks"
)

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()
	in := model.ContactCreate{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I'd like to get in touch.",
	}
	meta := RequestMeta{IP: "203.0.113.7", UserAgent: "curl/8.0"}

	t.Run("stores message and records event", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(msg model.ContactMessage) bool {
			return msg.Name == in.Name && msg.IPAddress == meta.IP && !msg.IsRead
		})).Return("665f1f77bcf86cd799439011", nil)
		mAnalytics.On("Create", ctx, mock.MatchedBy(func(ev model.AnalyticsEvent) bool {
			return ev.EventType == model.EventTypeContact && ev.Page == "contact"
		})).Return(nil)

		svc := NewContactService(mRepo, mAnalytics, zerolog.Nop())
		id, ok := svc.Submit(ctx, in, meta)

		assert.True(t, ok)
		assert.Equal(t, "665f1f77bcf86cd799439011", id)
		mRepo.AssertExpectations(t)
		mAnalytics.AssertExpectations(t)
	})

	t.Run("event failure does not fail the submission", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mRepo.On("Create", ctx, mock.Anything).Return("665f1f77bcf86cd799439011", nil)
		mAnalytics.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

		svc := NewContactService(mRepo, mAnalytics, zerolog.Nop())
		id, ok := svc.Submit(ctx, in, meta)

		assert.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("message failure fails closed and skips the event", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mRepo.On("Create", ctx, mock.Anything).Return("", errors.New("write failed"))

		svc := NewContactService(mRepo, mAnalytics, zerolog.Nop())
		id, ok := svc.Submit(ctx, in, meta)

		assert.False(t, ok)
		assert.Empty(t, id)
		mAnalytics.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns messages", func(t *testing.T) {
		stored := []model.ContactMessage{{ID: "665f1f77bcf86cd799439011", Name: "Jane Doe"}}
		mRepo := new(repoMocks.MockContactRepository)
		mRepo.On("List", ctx).Return(stored, nil)

		svc := NewContactService(mRepo, new(repoMocks.MockAnalyticsRepository), zerolog.Nop())
		assert.Equal(t, stored, svc.List(ctx))
	})

	t.Run("store fault fails open to empty slice", func(t *testing.T) {
		mRepo := new(repoMocks.MockContactRepository)
		mRepo.On("List", ctx).Return(nil, errors.New("cursor error"))

		svc := NewContactService(mRepo, new(repoMocks.MockAnalyticsRepository), zerolog.Nop())
		got := svc.List(ctx)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestContactService_MarkRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		matched bool
		err     error
		want    bool
	}{
		{name: "matched", matched: true, want: true},
		{name: "unknown id", matched: false, want: false},
		{name: "store fault", err: errors.New("timeout"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockContactRepository)
			mRepo.On("MarkRead", ctx, "some-id").Return(tt.matched, tt.err)

			svc := NewContactService(mRepo, new(repoMocks.MockAnalyticsRepository), zerolog.Nop())
			assert.Equal(t, tt.want, svc.MarkRead(ctx, "some-id"))
			mRepo.AssertExpectations(t)
		})
	}
}
