// Package mongodb implements the repository interfaces against MongoDB.
// It owns the translation between domain records and stored documents:
// ObjectIDs never leave this package, identifiers cross the boundary as
// 24-char hex strings, and create/update timestamps are stamped here.
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolioapi/internal/repository"
)

// Collection names, one per entity type.
const (
	CollProfile        = "profile"
	CollProjects       = "projects"
	CollContactMsgs    = "contact_messages"
	CollAnalytics      = "analytics"
	CollVisualizations = "visualizations"
)

// now is a seam for tests; all stored timestamps are UTC.
var now = func() time.Time { return time.Now().UTC() }

// parseID converts an exposed hex identifier back to the internal form.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}

// insertedHex extracts the hex form of an InsertOne result id.
func insertedHex(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
