package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"portfolioapi/internal/config"
	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

const presignExpiry = 15 * time.Minute

// ResumeService defines the resume download use case: the endpoint serves
// metadata only, never the file itself.
type ResumeService interface {
	// Download records a download event and returns the resume metadata.
	// When object storage is configured the metadata is enriched with the
	// object size and a presigned URL; a storage fault degrades to the
	// static filename (reads fail open). ok=false only when the download
	// event could not be recorded.
	Download(ctx context.Context, meta RequestMeta) (model.ResumeInfo, bool)
}

type resumeService struct {
	analytics repository.AnalyticsRepository
	store     storage.Storage // nil when no object storage is configured
	cfg       config.ResumeConfig
	log       zerolog.Logger
}

// NewResumeService constructs a new ResumeService. store may be nil.
func NewResumeService(analytics repository.AnalyticsRepository, store storage.Storage, cfg config.ResumeConfig, log zerolog.Logger) ResumeService {
	return &resumeService{analytics: analytics, store: store, cfg: cfg, log: log}
}

func (s *resumeService) Download(ctx context.Context, meta RequestMeta) (model.ResumeInfo, bool) {
	err := s.analytics.Create(ctx, model.AnalyticsEvent{
		EventType: model.EventTypeDownload,
		Page:      "resume",
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("record resume download failed")
		return model.ResumeInfo{}, false
	}

	info := model.ResumeInfo{Filename: s.cfg.Filename}
	if s.store == nil {
		return info, true
	}

	obj, err := s.store.Stat(ctx, s.cfg.ObjectKey)
	if err != nil {
		s.log.Error().Err(err).Str("key", s.cfg.ObjectKey).Msg("stat resume object failed")
		return info, true
	}
	info.Size = obj.Size

	url, err := s.store.PresignGet(ctx, s.cfg.ObjectKey, presignExpiry)
	if err != nil {
		s.log.Error().Err(err).Str("key", s.cfg.ObjectKey).Msg("presign resume object failed")
		return info, true
	}
	info.URL = url

	return info, true
}
