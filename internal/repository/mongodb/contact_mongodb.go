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

// ContactMongo is the MongoDB implementation of repository.ContactRepository.
type ContactMongo struct {
	col *mongo.Collection
}

// NewContactMongo creates a new ContactMongo repository.
func NewContactMongo(db *mongo.Database) *ContactMongo {
	return &ContactMongo{col: db.Collection(CollContactMsgs)}
}

var _ repository.ContactRepository = (*ContactMongo)(nil)

type contactDoc struct {
	OID                  primitive.ObjectID `bson:"_id"`
	model.ContactMessage `bson:",inline"`
}

// Create inserts a message, stamping created_at and forcing is_read=false.
func (r *ContactMongo) Create(ctx context.Context, msg model.ContactMessage) (string, error) {
	msg.CreatedAt = now()
	msg.IsRead = false

	res, err := r.col.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	return insertedHex(res.InsertedID), nil
}

// List returns all messages, most recent first.
func (r *ContactMongo) List(ctx context.Context) ([]model.ContactMessage, error) {
	cur, err := r.col.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	msgs := make([]model.ContactMessage, 0)
	for cur.Next(ctx) {
		var doc contactDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		m := doc.ContactMessage
		m.ID = doc.OID.Hex()
		msgs = append(msgs, m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead sets is_read=true. Success keys on the matched count: marking an
// already-read message reports true, an unknown id reports false.
func (r *ContactMongo) MarkRead(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Count returns the total number of stored messages.
func (r *ContactMongo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}
