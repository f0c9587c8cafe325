package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// VisualizationMongo is the MongoDB implementation of
// repository.VisualizationRepository.
type VisualizationMongo struct {
	col *mongo.Collection
}

// NewVisualizationMongo creates a new VisualizationMongo repository.
func NewVisualizationMongo(db *mongo.Database) *VisualizationMongo {
	return &VisualizationMongo{col: db.Collection(CollVisualizations)}
}

var _ repository.VisualizationRepository = (*VisualizationMongo)(nil)

type visualizationDoc struct {
	OID                 primitive.ObjectID `bson:"_id"`
	model.Visualization `bson:",inline"`
}

// ListActive returns active visualizations ascending by display_order.
func (r *VisualizationMongo) ListActive(ctx context.Context) ([]model.Visualization, error) {
	cur, err := r.col.Find(ctx, bson.M{"is_active": true},
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	vizs := make([]model.Visualization, 0)
	for cur.Next(ctx) {
		var doc visualizationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		v := doc.Visualization
		v.ID = doc.OID.Hex()
		vizs = append(vizs, v)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return vizs, nil
}

// Create inserts a new visualization and returns its identifier in hex form.
func (r *VisualizationMongo) Create(ctx context.Context, v model.Visualization) (string, error) {
	ts := now()
	v.CreatedAt = ts
	v.UpdatedAt = ts

	res, err := r.col.InsertOne(ctx, v)
	if err != nil {
		return "", err
	}
	return insertedHex(res.InsertedID), nil
}
