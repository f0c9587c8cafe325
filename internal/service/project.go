package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ProjectService defines the use cases for portfolio projects.
type ProjectService interface {
	// List returns projects ascending by display order, optionally filtered
	// by exact type. Fails open: empty slice on store fault.
	List(ctx context.Context, typeFilter string) []model.Project

	// Create returns the new identifier. Fails closed: ok=false on fault.
	Create(ctx context.Context, in model.ProjectCreate) (string, bool)

	// Update applies only the supplied fields. False means the id matched
	// no document (or the store faulted).
	Update(ctx context.Context, id string, upd model.ProjectUpdate) bool

	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id string) bool
}

type projectService struct {
	repo repository.ProjectRepository
	log  zerolog.Logger
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(repo repository.ProjectRepository, log zerolog.Logger) ProjectService {
	return &projectService{repo: repo, log: log}
}

func (s *projectService) List(ctx context.Context, typeFilter string) []model.Project {
	projects, err := s.repo.List(ctx, typeFilter)
	if err != nil {
		s.log.Error().Err(err).Str("type", typeFilter).Msg("list projects failed")
		return []model.Project{}
	}
	return projects
}

func (s *projectService) Create(ctx context.Context, in model.ProjectCreate) (string, bool) {
	id, err := s.repo.Create(ctx, in.Model())
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("create project failed")
		return "", false
	}
	return id, true
}

func (s *projectService) Update(ctx context.Context, id string, upd model.ProjectUpdate) bool {
	found, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if !errors.Is(err, repository.ErrInvalidID) {
			s.log.Error().Err(err).Str("id", id).Msg("update project failed")
		}
		return false
	}
	return found
}

func (s *projectService) Delete(ctx context.Context, id string) bool {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrInvalidID) {
			s.log.Error().Err(err).Str("id", id).Msg("delete project failed")
		}
		return false
	}
	return deleted
}
