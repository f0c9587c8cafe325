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

// ProfileMongo is the MongoDB implementation of repository.ProfileRepository.
type ProfileMongo struct {
	col *mongo.Collection
}

// NewProfileMongo creates a new ProfileMongo repository.
func NewProfileMongo(db *mongo.Database) *ProfileMongo {
	return &ProfileMongo{col: db.Collection(CollProfile)}
}

var _ repository.ProfileRepository = (*ProfileMongo)(nil)

type profileDoc struct {
	OID           primitive.ObjectID `bson:"_id"`
	model.Profile `bson:",inline"`
}

// Get returns the single profile document, or mongo.ErrNoDocuments.
func (r *ProfileMongo) Get(ctx context.Context) (*model.Profile, error) {
	var doc profileDoc
	if err := r.col.FindOne(ctx, bson.D{}).Decode(&doc); err != nil {
		return nil, err
	}
	p := doc.Profile
	p.ID = doc.OID.Hex()
	return &p, nil
}

// Upsert merges the supplied blocks into the profile document with one
// atomic command, so concurrent upserts cannot create a second document.
// updated_at is set on every write, created_at only on first insert.
func (r *ProfileMongo) Upsert(ctx context.Context, upd model.ProfileUpdate) error {
	ts := now()

	set := bson.M{"updated_at": ts}
	if upd.Personal != nil {
		set["personal"] = *upd.Personal
	}
	if upd.Skills != nil {
		set["skills"] = *upd.Skills
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Education != nil {
		set["education"] = *upd.Education
	}
	if upd.Certifications != nil {
		set["certifications"] = *upd.Certifications
	}

	_, err := r.col.UpdateOne(ctx, bson.D{},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"created_at": ts},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
