package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolioapi/internal/repository"
)

// Seeder populates the store with the default profile, projects, and
// visualizations exactly once. It never overwrites existing data: a
// present profile makes Run a no-op.
type Seeder struct {
	profiles repository.ProfileRepository
	projects repository.ProjectRepository
	vizs     repository.VisualizationRepository
	log      zerolog.Logger
}

// New constructs a Seeder over the given repositories.
func New(profiles repository.ProfileRepository, projects repository.ProjectRepository, vizs repository.VisualizationRepository, log zerolog.Logger) *Seeder {
	return &Seeder{profiles: profiles, projects: projects, vizs: vizs, log: log}
}

// Run seeds default content when no profile exists. The profile insert is
// fatal to the run; a failed project or visualization insert is logged and
// skipped so the remaining items still land.
func (s *Seeder) Run(ctx context.Context) error {
	_, err := s.profiles.Get(ctx)
	if err == nil {
		s.log.Info().Msg("profile already exists, skipping seed data")
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check existing profile: %w", err)
	}

	if err := s.profiles.Upsert(ctx, defaultProfile()); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	for _, p := range defaultProjects() {
		if _, err := s.projects.Create(ctx, p); err != nil {
			s.log.Error().Err(err).Str("title", p.Title).Msg("seed project failed")
		}
	}

	for _, v := range defaultVisualizations() {
		if _, err := s.vizs.Create(ctx, v); err != nil {
			s.log.Error().Err(err).Str("title", v.Title).Msg("seed visualization failed")
		}
	}

	s.log.Info().Msg("seeded initial portfolio data")
	return nil
}
