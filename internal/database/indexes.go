package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexStep struct {
	Collection string
	Name       string
	Keys       bson.D
}

var indexSteps = []indexStep{
	{
		Collection: "projects",
		Name:       "idx_projects_display_order",
		Keys:       bson.D{{Key: "display_order", Value: 1}},
	},
	{
		Collection: "projects",
		Name:       "idx_projects_type",
		Keys:       bson.D{{Key: "type", Value: 1}},
	},
	{
		Collection: "contact_messages",
		Name:       "idx_contact_messages_created_at",
		Keys:       bson.D{{Key: "created_at", Value: -1}},
	},
	{
		Collection: "analytics",
		Name:       "idx_analytics_event_type_timestamp",
		Keys:       bson.D{{Key: "event_type", Value: 1}, {Key: "timestamp", Value: -1}},
	},
	{
		Collection: "visualizations",
		Name:       "idx_visualizations_active_order",
		Keys:       bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}},
	},
}

// EnsureIndexes creates the secondary indexes backing the sorted and
// filtered listing operations. Index creation is idempotent on the server
// side, so this runs unconditionally at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	start := time.Now()

	log.Info().Str("component", "database").Str("db", db.Name()).Msg("index check starting")

	for _, step := range indexSteps {
		name := step.Name
		_, err := db.Collection(step.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    step.Keys,
			Options: options.Index().SetName(name),
		})
		if err != nil {
			log.Error().
				Err(err).
				Str("component", "database").
				Str("collection", step.Collection).
				Str("index", name).
				Msg("index creation failed")
			return err
		}
	}

	log.Info().
		Str("component", "database").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Int("indexes", len(indexSteps)).
		Msg("index check complete")
	return nil
}
