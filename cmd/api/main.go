package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"portfolioapi/docs"
	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	handlers "portfolioapi/internal/http/handler"
	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/otel"
	"portfolioapi/internal/repository/mongodb"
	"portfolioapi/internal/seed"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// @title Portfolio API
// @version 1.0
// @BasePath /
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer shutdownTracing(context.Background())

	// Connect to the document store and make sure indexes exist
	client, db, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	// Object storage is optional: without it the resume endpoint serves
	// static metadata only.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		logger.Info().Msg("object storage not configured, resume metadata only")
	}

	// Repositories
	profileRepo := mongodb.NewProfileMongo(db)
	projectRepo := mongodb.NewProjectMongo(db)
	contactRepo := mongodb.NewContactMongo(db)
	analyticsRepo := mongodb.NewAnalyticsMongo(db)
	vizRepo := mongodb.NewVisualizationMongo(db)

	seeder := seed.New(profileRepo, projectRepo, vizRepo, logger)

	// Services
	svcs := handlers.Services{
		Profile:       service.NewProfileService(profileRepo, seeder, logger),
		Project:       service.NewProjectService(projectRepo, logger),
		Contact:       service.NewContactService(contactRepo, analyticsRepo, logger),
		Analytics:     service.NewAnalyticsService(analyticsRepo, contactRepo, logger),
		Visualization: service.NewVisualizationService(vizRepo, logger),
		Resume:        service.NewResumeService(analyticsRepo, objStore, cfg.Resume, logger),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, client, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Shut down cleanly on SIGINT/SIGTERM so in-flight requests finish
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
