package service

import (
	"context"

	"github.com/rs/zerolog"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// VisualizationService defines the use cases for visualization records.
type VisualizationService interface {
	// List returns active visualizations ascending by display order.
	// Fails open: empty slice on store fault.
	List(ctx context.Context) []model.Visualization

	// Create returns the new identifier. Fails closed: ok=false on fault.
	Create(ctx context.Context, in model.VisualizationCreate) (string, bool)
}

type visualizationService struct {
	repo repository.VisualizationRepository
	log  zerolog.Logger
}

// NewVisualizationService constructs a new VisualizationService.
func NewVisualizationService(repo repository.VisualizationRepository, log zerolog.Logger) VisualizationService {
	return &visualizationService{repo: repo, log: log}
}

func (s *visualizationService) List(ctx context.Context) []model.Visualization {
	vizs, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list visualizations failed")
		return []model.Visualization{}
	}
	return vizs
}

func (s *visualizationService) Create(ctx context.Context, in model.VisualizationCreate) (string, bool) {
	id, err := s.repo.Create(ctx, in.Model())
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("create visualization failed")
		return "", false
	}
	return id, true
}
