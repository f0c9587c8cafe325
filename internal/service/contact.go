package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContactService defines the use cases for contact messages.
type ContactService interface {
	// Submit stores a message and records a best-effort "contact"
	// analytics event. Fails closed: ok=false on store fault.
	Submit(ctx context.Context, in model.ContactCreate, meta RequestMeta) (string, bool)

	// List returns all messages, newest first. Fails open.
	List(ctx context.Context) []model.ContactMessage

	// MarkRead flags a message as read. False means unknown id or fault.
	MarkRead(ctx context.Context, id string) bool
}

type contactService struct {
	repo      repository.ContactRepository
	analytics repository.AnalyticsRepository
	log       zerolog.Logger
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository, analytics repository.AnalyticsRepository, log zerolog.Logger) ContactService {
	return &contactService{repo: repo, analytics: analytics, log: log}
}

func (s *contactService) Submit(ctx context.Context, in model.ContactCreate, meta RequestMeta) (string, bool) {
	id, err := s.repo.Create(ctx, model.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("create contact message failed")
		return "", false
	}

	// The message is stored; a lost event must not fail the submission.
	if err := s.analytics.Create(ctx, model.AnalyticsEvent{
		EventType: model.EventTypeContact,
		Page:      "contact",
		IPAddress: meta.IP,
		UserAgent: meta.UserAgent,
	}); err != nil {
		s.log.Error().Err(err).Msg("record contact event failed")
	}

	return id, true
}

func (s *contactService) List(ctx context.Context) []model.ContactMessage {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list contact messages failed")
		return []model.ContactMessage{}
	}
	return msgs
}

func (s *contactService) MarkRead(ctx context.Context, id string) bool {
	found, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrInvalidID) {
			s.log.Error().Err(err).Str("id", id).Msg("mark message read failed")
		}
		return false
	}
	return found
}
