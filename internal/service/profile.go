package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ProfileService defines the use cases for the single portfolio profile.
type ProfileService interface {
	// Get returns the profile, or nil when absent. An empty store triggers
	// one seeding pass followed by a re-read. Fails open: nil on store fault.
	Get(ctx context.Context) *model.Profile

	// Upsert merges the supplied blocks into the profile. Fails closed:
	// false on store fault.
	Upsert(ctx context.Context, upd model.ProfileUpdate) bool
}

type profileService struct {
	repo   repository.ProfileRepository
	seeder Seeder
	log    zerolog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(repo repository.ProfileRepository, seeder Seeder, log zerolog.Logger) ProfileService {
	return &profileService{repo: repo, seeder: seeder, log: log}
}

func (s *profileService) Get(ctx context.Context) *model.Profile {
	p, err := s.repo.Get(ctx)
	if err == nil {
		return p
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.log.Error().Err(err).Msg("get profile failed")
		return nil
	}

	// First access on a fresh deployment pays the seeding cost.
	if err := s.seeder.Run(ctx); err != nil {
		s.log.Error().Err(err).Msg("profile seeding failed")
		return nil
	}

	p, err = s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			s.log.Error().Err(err).Msg("get profile after seeding failed")
		}
		return nil
	}
	return p
}

func (s *profileService) Upsert(ctx context.Context, upd model.ProfileUpdate) bool {
	if err := s.repo.Upsert(ctx, upd); err != nil {
		s.log.Error().Err(err).Msg("upsert profile failed")
		return false
	}
	return true
}
