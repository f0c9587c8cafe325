package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// The repositories below define data access for the portfolio collections
// using document-store commands only. No business logic here — strictly
// persistence operations. Identifier translation (internal id ⇄ hex
// string) and create/update timestamping happen at this boundary.

// ProfileRepository manages the single profile document.
type ProfileRepository interface {
	// Get returns the stored profile, or mongo.ErrNoDocuments when none exists.
	Get(ctx context.Context) (*model.Profile, error)

	// Upsert applies the non-nil blocks of upd to the profile document in a
	// single atomic command, setting updated_at on every write and
	// created_at only on first insert.
	Upsert(ctx context.Context, upd model.ProfileUpdate) error
}

// ProjectRepository manages project documents.
type ProjectRepository interface {
	// List returns projects sorted ascending by display_order, optionally
	// restricted to an exact type match when typeFilter is non-empty.
	List(ctx context.Context, typeFilter string) ([]model.Project, error)

	// Create inserts a new project, stamping created_at/updated_at, and
	// returns the new identifier in hex form.
	Create(ctx context.Context, p model.Project) (string, error)

	// Update applies only the non-nil fields of upd and stamps updated_at.
	// It reports whether a document matched the id; an update that leaves
	// the document unchanged still counts as found.
	Update(ctx context.Context, id string, upd model.ProjectUpdate) (bool, error)

	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// ContactRepository manages contact messages. Messages are immutable after
// creation except for the read flag.
type ContactRepository interface {
	// Create inserts a message, stamping created_at and forcing
	// is_read=false regardless of input.
	Create(ctx context.Context, msg model.ContactMessage) (string, error)

	// List returns all messages, most recent first.
	List(ctx context.Context) ([]model.ContactMessage, error)

	// MarkRead sets is_read=true and reports whether a document matched.
	MarkRead(ctx context.Context, id string) (bool, error)

	// Count returns the total number of stored messages.
	Count(ctx context.Context) (int64, error)
}

// AnalyticsRepository manages the append-only analytics collection.
type AnalyticsRepository interface {
	// Create inserts an event, stamping its timestamp. No identifier is
	// returned; events are never addressed individually.
	Create(ctx context.Context, ev model.AnalyticsEvent) error

	// CountByType counts events with the given event_type.
	CountByType(ctx context.Context, eventType string) (int64, error)

	// RecentVisits returns up to limit visit events, newest first, reduced
	// to page/timestamp/ip with missing values defaulted.
	RecentVisits(ctx context.Context, limit int) ([]model.RecentVisit, error)

	// TopPages returns up to limit distinct pages ranked by visit count.
	TopPages(ctx context.Context, limit int) ([]model.PageCount, error)
}

// VisualizationRepository manages visualization documents.
type VisualizationRepository interface {
	// ListActive returns is_active documents sorted ascending by display_order.
	ListActive(ctx context.Context) ([]model.Visualization, error)

	// Create inserts a new visualization, stamping timestamps, and returns
	// the new identifier in hex form.
	Create(ctx context.Context, v model.Visualization) (string, error)
}
