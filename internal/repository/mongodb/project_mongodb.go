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

// ProjectMongo is the MongoDB implementation of repository.ProjectRepository.
type ProjectMongo struct {
	col *mongo.Collection
}

// NewProjectMongo creates a new ProjectMongo repository.
func NewProjectMongo(db *mongo.Database) *ProjectMongo {
	return &ProjectMongo{col: db.Collection(CollProjects)}
}

var _ repository.ProjectRepository = (*ProjectMongo)(nil)

type projectDoc struct {
	OID           primitive.ObjectID `bson:"_id"`
	model.Project `bson:",inline"`
}

// List returns projects ascending by display_order, optionally restricted
// to an exact type match.
func (r *ProjectMongo) List(ctx context.Context, typeFilter string) ([]model.Project, error) {
	filter := bson.M{}
	if typeFilter != "" {
		filter["type"] = typeFilter
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := make([]model.Project, 0)
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		p := doc.Project
		p.ID = doc.OID.Hex()
		projects = append(projects, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

// Create inserts a new project and returns its identifier in hex form.
func (r *ProjectMongo) Create(ctx context.Context, p model.Project) (string, error) {
	ts := now()
	p.CreatedAt = ts
	p.UpdatedAt = ts

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return insertedHex(res.InsertedID), nil
}

// Update applies only the non-nil fields of upd and stamps updated_at.
// Success is keyed on the matched count, so an update identical to the
// current state still reports true; only an unknown id reports false.
func (r *ProjectMongo) Update(ctx context.Context, id string, upd model.ProjectUpdate) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	set := bson.M{"updated_at": now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Company != nil {
		set["company"] = *upd.Company
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Impact != nil {
		set["impact"] = *upd.Impact
	}
	if upd.Technologies != nil {
		set["technologies"] = *upd.Technologies
	}
	if upd.Details != nil {
		set["details"] = *upd.Details
	}
	if upd.Featured != nil {
		set["featured"] = *upd.Featured
	}
	if upd.DisplayOrder != nil {
		set["display_order"] = *upd.DisplayOrder
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete reports whether a document was removed.
func (r *ProjectMongo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
