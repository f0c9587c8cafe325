package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// AnalyticsMongo is the MongoDB implementation of repository.AnalyticsRepository.
type AnalyticsMongo struct {
	col *mongo.Collection
}

// NewAnalyticsMongo creates a new AnalyticsMongo repository.
func NewAnalyticsMongo(db *mongo.Database) *AnalyticsMongo {
	return &AnalyticsMongo{col: db.Collection(CollAnalytics)}
}

var _ repository.AnalyticsRepository = (*AnalyticsMongo)(nil)

// Create appends an event, stamping its timestamp. Events carry no exposed
// identifier.
func (r *AnalyticsMongo) Create(ctx context.Context, ev model.AnalyticsEvent) error {
	ev.Timestamp = now()
	_, err := r.col.InsertOne(ctx, ev)
	return err
}

// CountByType counts events with the given event_type.
func (r *AnalyticsMongo) CountByType(ctx context.Context, eventType string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"event_type": eventType})
}

// RecentVisits returns up to limit visit events, newest first, reduced to
// page/timestamp/ip. A visit without a page maps to "/", without an IP to
// "unknown".
func (r *AnalyticsMongo) RecentVisits(ctx context.Context, limit int) ([]model.RecentVisit, error) {
	cur, err := r.col.Find(ctx, bson.M{"event_type": model.EventTypeVisit},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	visits := make([]model.RecentVisit, 0, limit)
	for cur.Next(ctx) {
		var v model.RecentVisit
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		if v.Page == "" {
			v.Page = "/"
		}
		if v.IPAddress == "" {
			v.IPAddress = "unknown"
		}
		visits = append(visits, v)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return visits, nil
}

// TopPages ranks distinct pages by visit count, descending, using a single
// aggregation pipeline. Empty page values are normalized to "/".
func (r *AnalyticsMongo) TopPages(ctx context.Context, limit int) ([]model.PageCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"event_type": model.EventTypeVisit}}},
		{{Key: "$group", Value: bson.M{"_id": "$page", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pages := make([]model.PageCount, 0, limit)
	for cur.Next(ctx) {
		var row struct {
			Page  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		if row.Page == "" {
			row.Page = "/"
		}
		pages = append(pages, model.PageCount{Page: row.Page, Visits: row.Count})
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}
