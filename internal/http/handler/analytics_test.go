package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	svcMocks "portfolioapi/internal/service/mocks"
)

func TestLogVisit(t *testing.T) {
	t.Run("records the visit", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)
		mSvc.On("RecordVisit", mock.Anything, mock.MatchedBy(func(in model.AnalyticsCreate) bool {
			return in.EventType == model.EventTypeVisit && in.Page == "/projects"
		}), mock.Anything).Return(true)

		app := newTestApp()
		app.Post("/api/analytics/visit", LogVisit(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/analytics/visit", map[string]any{
			"event_type": "visit",
			"page":       "/projects",
		})

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Visit logged", body["message"])
	})

	t.Run("missing event_type is a validation failure", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)

		app := newTestApp()
		app.Post("/api/analytics/visit", LogVisit(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/analytics/visit", map[string]any{
			"page": "/projects",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "validation failed", body["message"])
		mSvc.AssertNotCalled(t, "RecordVisit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unrecorded event yields 500", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)
		mSvc.On("RecordVisit", mock.Anything, mock.Anything, mock.Anything).Return(false)

		app := newTestApp()
		app.Post("/api/analytics/visit", LogVisit(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/analytics/visit", map[string]any{
			"event_type": "visit",
		})

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "failed to log visit", body["message"])
	})
}

func TestLogDownload(t *testing.T) {
	t.Run("records a resume download", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)
		mSvc.On("RecordDownload", mock.Anything, "resume", mock.Anything).Return(true)

		app := newTestApp()
		app.Post("/api/analytics/download", LogDownload(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/analytics/download", nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Download logged", body["message"])
		mSvc.AssertExpectations(t)
	})

	t.Run("unrecorded event yields 500", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)
		mSvc.On("RecordDownload", mock.Anything, "resume", mock.Anything).Return(false)

		app := newTestApp()
		app.Post("/api/analytics/download", LogDownload(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/analytics/download", nil)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "failed to log download", body["message"])
	})
}

func TestGetAnalyticsStats(t *testing.T) {
	t.Run("returns the aggregate", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)
		mSvc.On("Stats", mock.Anything).Return(model.AnalyticsStats{
			TotalVisits:    42,
			TotalDownloads: 7,
			TotalContacts:  3,
			RecentVisits:   []model.RecentVisit{{Page: "/"}},
			TopPages:       []model.PageCount{{Page: "/", Visits: 42}},
		})

		app := newTestApp()
		app.Get("/api/analytics/stats", GetAnalyticsStats(mSvc))

		status, body := doJSON(t, app, http.MethodGet, "/api/analytics/stats", nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(42), body["total_visits"])
		assert.Equal(t, float64(3), body["total_contacts"])
	})

	t.Run("degraded aggregate is still a 200", func(t *testing.T) {
		mSvc := new(svcMocks.MockAnalyticsService)
		mSvc.On("Stats", mock.Anything).Return(model.AnalyticsStats{
			RecentVisits: []model.RecentVisit{},
			TopPages:     []model.PageCount{},
		})

		app := newTestApp()
		app.Get("/api/analytics/stats", GetAnalyticsStats(mSvc))

		status, body := doJSON(t, app, http.MethodGet, "/api/analytics/stats", nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(0), body["total_visits"])
		assert.NotNil(t, body["recent_visits"])
	})
}
