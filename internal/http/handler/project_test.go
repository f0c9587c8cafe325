package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	svcMocks "portfolioapi/internal/service/mocks"
)

func TestListProjects(t *testing.T) {
	t.Run("passes the type filter through", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("List", mock.Anything, "professional").Return([]model.Project{
			{ID: "665f1f77bcf86cd799439011", Title: "Claims360"},
		})

		app := newTestApp()
		app.Get("/api/projects", ListProjects(mSvc))

		status, list := doJSONList(t, app, http.MethodGet, "/api/projects?project_type=professional")

		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, list, 1)
		mSvc.AssertExpectations(t)
	})

	t.Run("degraded list is an empty array", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("List", mock.Anything, "").Return([]model.Project{})

		app := newTestApp()
		app.Get("/api/projects", ListProjects(mSvc))

		status, list := doJSONList(t, app, http.MethodGet, "/api/projects")

		assert.Equal(t, http.StatusOK, status)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestCreateProject(t *testing.T) {
	valid := map[string]any{
		"title":       "Claims360",
		"company":     "Acme Insurance",
		"type":        "professional",
		"description": "End-to-end claims pipeline",
	}

	t.Run("returns the new id", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("Create", mock.Anything, mock.MatchedBy(func(in model.ProjectCreate) bool {
			return in.Title == "Claims360"
		})).Return("665f1f77bcf86cd799439011", true)

		app := newTestApp()
		app.Post("/api/projects", CreateProject(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/projects", valid)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Project created successfully", body["message"])
		data := body["data"].(map[string]any)
		assert.Equal(t, "665f1f77bcf86cd799439011", data["project_id"])
	})

	t.Run("missing required fields name each failure", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)

		app := newTestApp()
		app.Post("/api/projects", CreateProject(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/projects", map[string]any{"title": "Claims360"})

		assert.Equal(t, http.StatusBadRequest, status)
		fields, ok := body["data"].([]any)
		assert.True(t, ok)
		assert.Len(t, fields, 3) // company, type, description
		mSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-JSON body is a bad request", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)

		app := newTestApp()
		app.Post("/api/projects", CreateProject(mSvc))

		status, body := doJSON(t, app, http.MethodPost, "/api/projects", "not-an-object")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid request body", body["message"])
	})
}

func TestUpdateProject(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("Update", mock.Anything, "665f1f77bcf86cd799439011", mock.Anything).Return(true)

		app := newTestApp()
		app.Put("/api/projects/:id", UpdateProject(mSvc))

		status, body := doJSON(t, app, http.MethodPut, "/api/projects/665f1f77bcf86cd799439011",
			map[string]any{"title": "Renamed"})

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Project updated successfully", body["message"])
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(false)

		app := newTestApp()
		app.Put("/api/projects/:id", UpdateProject(mSvc))

		status, body := doJSON(t, app, http.MethodPut, "/api/projects/665f1f77bcf86cd799439011",
			map[string]any{"title": "Renamed"})

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "project not found", body["message"])
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("Delete", mock.Anything, "665f1f77bcf86cd799439011").Return(true)

		app := newTestApp()
		app.Delete("/api/projects/:id", DeleteProject(mSvc))

		status, body := doJSON(t, app, http.MethodDelete, "/api/projects/665f1f77bcf86cd799439011", nil)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Project deleted successfully", body["message"])
	})

	t.Run("unknown or malformed id yields 404", func(t *testing.T) {
		mSvc := new(svcMocks.MockProjectService)
		mSvc.On("Delete", mock.Anything, "not-an-id").Return(false)

		app := newTestApp()
		app.Delete("/api/projects/:id", DeleteProject(mSvc))

		status, body := doJSON(t, app, http.MethodDelete, "/api/projects/not-an-id", nil)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "project not found", body["message"])
	})
}
