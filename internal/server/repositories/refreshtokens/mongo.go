package refreshtokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("refresh_tokens")}
}

func (r *MongoRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	doc := &models.RefreshToken{
		Token:   token,
		UserID:  userID,
		Expires: time.Now().UTC().Add(validity),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error inserting refresh token: %w", err)
	}
	return nil
}

func (r *MongoRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt := &models.RefreshToken{}
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(rt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error querying refresh token: %w", err)
	}
	return rt, nil
}

func (r *MongoRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": token}); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}
