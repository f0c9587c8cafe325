package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/config"
	"portfolioapi/internal/model"
	repoMocks "portfolioapi/internal/repository/mocks"
	"portfolioapi/internal/storage"
	storeMocks "portfolioapi/internal/storage/mocks"
)

func TestResumeService_Download(t *testing.T) {
	ctx := context.Background()
	cfg := config.ResumeConfig{Filename: "resume.pdf", ObjectKey: "resume/resume.pdf"}
	meta := RequestMeta{IP: "203.0.113.7"}

	t.Run("no storage configured returns filename only", func(t *testing.T) {
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mAnalytics.On("Create", ctx, mock.MatchedBy(func(ev model.AnalyticsEvent) bool {
			return ev.EventType == model.EventTypeDownload && ev.Page == "resume"
		})).Return(nil)

		svc := NewResumeService(mAnalytics, nil, cfg, zerolog.Nop())
		info, ok := svc.Download(ctx, meta)

		assert.True(t, ok)
		assert.Equal(t, model.ResumeInfo{Filename: "resume.pdf"}, info)
		mAnalytics.AssertExpectations(t)
	})

	t.Run("storage enriches size and presigned url", func(t *testing.T) {
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mStore := new(storeMocks.MockStorage)
		mAnalytics.On("Create", ctx, mock.Anything).Return(nil)
		mStore.On("Stat", ctx, cfg.ObjectKey).Return(storage.ObjectInfo{Key: cfg.ObjectKey, Size: 120_000}, nil)
		mStore.On("PresignGet", ctx, cfg.ObjectKey, presignExpiry).Return("https://minio.example.com/resume?sig=abc", nil)

		svc := NewResumeService(mAnalytics, mStore, cfg, zerolog.Nop())
		info, ok := svc.Download(ctx, meta)

		assert.True(t, ok)
		assert.Equal(t, int64(120_000), info.Size)
		assert.Equal(t, "https://minio.example.com/resume?sig=abc", info.URL)
		mStore.AssertExpectations(t)
	})

	t.Run("stat failure degrades to filename only", func(t *testing.T) {
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mStore := new(storeMocks.MockStorage)
		mAnalytics.On("Create", ctx, mock.Anything).Return(nil)
		mStore.On("Stat", ctx, cfg.ObjectKey).Return(storage.ObjectInfo{}, errors.New("connection refused"))

		svc := NewResumeService(mAnalytics, mStore, cfg, zerolog.Nop())
		info, ok := svc.Download(ctx, meta)

		assert.True(t, ok)
		assert.Equal(t, model.ResumeInfo{Filename: "resume.pdf"}, info)
		mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presign failure keeps the size", func(t *testing.T) {
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mStore := new(storeMocks.MockStorage)
		mAnalytics.On("Create", ctx, mock.Anything).Return(nil)
		mStore.On("Stat", ctx, cfg.ObjectKey).Return(storage.ObjectInfo{Size: 120_000}, nil)
		mStore.On("PresignGet", ctx, cfg.ObjectKey, presignExpiry).Return("", errors.New("signing error"))

		svc := NewResumeService(mAnalytics, mStore, cfg, zerolog.Nop())
		info, ok := svc.Download(ctx, meta)

		assert.True(t, ok)
		assert.Equal(t, int64(120_000), info.Size)
		assert.Empty(t, info.URL)
	})

	t.Run("unrecorded event fails closed", func(t *testing.T) {
		mAnalytics := new(repoMocks.MockAnalyticsRepository)
		mStore := new(storeMocks.MockStorage)
		mAnalytics.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

		svc := NewResumeService(mAnalytics, mStore, cfg, zerolog.Nop())
		info, ok := svc.Download(ctx, meta)

		assert.False(t, ok)
		assert.Zero(t, info)
		mStore.AssertNotCalled(t, "Stat", mock.Anything, mock.Anything)
	})
}
