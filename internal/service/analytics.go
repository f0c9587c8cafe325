package service

import (
	"context"

	"github.com/rs/zerolog"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

const (
	recentVisitsLimit = 10
	topPagesLimit     = 5
)

// AnalyticsService defines the use cases for usage analytics.
type AnalyticsService interface {
	// RecordVisit appends a visit event. Fails closed.
	RecordVisit(ctx context.Context, in model.AnalyticsCreate, meta RequestMeta) bool

	// RecordDownload appends a download event for the given page. Fails closed.
	RecordDownload(ctx context.Context, page string, meta RequestMeta) bool

	// Stats computes the aggregate in one logical pass. Fails open: a
	// zeroed aggregate on any store fault.
	Stats(ctx context.Context) model.AnalyticsStats
}

type analyticsService struct {
	repo    repository.AnalyticsRepository
	contact repository.ContactRepository
	log     zerolog.Logger
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(repo repository.AnalyticsRepository, contact repository.ContactRepository, log zerolog.Logger) AnalyticsService {
	return &analyticsService{repo: repo, contact: contact, log: log}
}

func (s *analyticsService) RecordVisit(ctx context.Context, in model.AnalyticsCreate, meta RequestMeta) bool {
	err := s.repo.Create(ctx, model.AnalyticsEvent{
		EventType: in.EventType,
		Page:      in.Page,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	})
	if err != nil {
		s.log.Error().Err(err).Str("page", in.Page).Msg("record visit failed")
		return false
	}
	return true
}

func (s *analyticsService) RecordDownload(ctx context.Context, page string, meta RequestMeta) bool {
	err := s.repo.Create(ctx, model.AnalyticsEvent{
		EventType: model.EventTypeDownload,
		Page:      page,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	})
	if err != nil {
		s.log.Error().Err(err).Str("page", page).Msg("record download failed")
		return false
	}
	return true
}

func (s *analyticsService) Stats(ctx context.Context) model.AnalyticsStats {
	zero := model.AnalyticsStats{
		RecentVisits: []model.RecentVisit{},
		TopPages:     []model.PageCount{},
	}

	visits, err := s.repo.CountByType(ctx, model.EventTypeVisit)
	if err != nil {
		s.log.Error().Err(err).Msg("count visits failed")
		return zero
	}
	downloads, err := s.repo.CountByType(ctx, model.EventTypeDownload)
	if err != nil {
		s.log.Error().Err(err).Msg("count downloads failed")
		return zero
	}
	contacts, err := s.contact.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count contact messages failed")
		return zero
	}
	recent, err := s.repo.RecentVisits(ctx, recentVisitsLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("recent visits failed")
		return zero
	}
	top, err := s.repo.TopPages(ctx, topPagesLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("top pages failed")
		return zero
	}

	return model.AnalyticsStats{
		TotalVisits:    visits,
		TotalDownloads: downloads,
		TotalContacts:  contacts,
		RecentVisits:   recent,
		TopPages:       top,
	}
}
