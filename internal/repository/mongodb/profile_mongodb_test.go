package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"portfolioapi/internal/model"
)

// fixNow pins the package clock for the duration of a test.
func fixNow(t *testing.T, ts time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
}

func TestProfileMongo_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes document and exposes hex id", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "portfolio.profile", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "personal", Value: bson.D{
				{Key: "name", Value: "Jane Doe"},
				{Key: "email", Value: "jane@example.com"},
			}},
		}))

		repo := NewProfileMongo(mt.DB)
		p, err := repo.Get(context.Background())

		assert.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), p.ID)
		assert.Equal(mt, "Jane Doe", p.Personal.Name)
	})

	mt.Run("empty collection surfaces ErrNoDocuments", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portfolio.profile", mtest.FirstBatch))

		repo := NewProfileMongo(mt.DB)
		p, err := repo.Get(context.Background())

		assert.Nil(mt, p)
		assert.True(mt, errors.Is(err, mongo.ErrNoDocuments))
	})
}

func TestProfileMongo_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("single atomic update succeeds", func(mt *mtest.T) {
		fixNow(mt.T, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		repo := NewProfileMongo(mt.DB)
		personal := model.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"}
		err := repo.Upsert(context.Background(), model.ProfileUpdate{Personal: &personal})

		assert.NoError(mt, err)
	})

	mt.Run("write error is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key",
		}))

		repo := NewProfileMongo(mt.DB)
		err := repo.Upsert(context.Background(), model.ProfileUpdate{})

		assert.Error(mt, err)
	})
}
