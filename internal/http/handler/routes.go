package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolioapi/internal/service"
)

// Services bundles the per-resource services required by the routes.
// Everything is injected; handlers hold no package-level state.
type Services struct {
	Profile       service.ProfileService
	Project       service.ProjectService
	Contact       service.ContactService
	Analytics     service.AnalyticsService
	Visualization service.VisualizationService
	Resume        service.ResumeService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay free of business logic; they validate, call a service, and shape
// the response.
func RegisterRoutes(app *fiber.App, client *mongo.Client, svcs Services) {
	// Health endpoint: checks store connectivity only
	app.Get("/health", HealthCheck(client))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/profile", GetProfile(svcs.Profile))
	api.Put("/profile", UpdateProfile(svcs.Profile))

	api.Get("/projects", ListProjects(svcs.Project))
	api.Post("/projects", CreateProject(svcs.Project))
	api.Put("/projects/:id", UpdateProject(svcs.Project))
	api.Delete("/projects/:id", DeleteProject(svcs.Project))

	api.Post("/contact", SubmitContact(svcs.Contact))
	api.Get("/contact", ListContactMessages(svcs.Contact))
	api.Put("/contact/:id/read", MarkMessageRead(svcs.Contact))

	api.Post("/analytics/visit", LogVisit(svcs.Analytics))
	api.Post("/analytics/download", LogDownload(svcs.Analytics))
	api.Get("/analytics/stats", GetAnalyticsStats(svcs.Analytics))

	api.Get("/resume/download", DownloadResume(svcs.Resume))

	api.Get("/visualizations", ListVisualizations(svcs.Visualization))
	api.Post("/visualizations", CreateVisualization(svcs.Visualization))
}
