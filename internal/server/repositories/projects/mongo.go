package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/models"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("projects")}
}

func (r *MongoRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	_, err := r.collection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("error inserting project: %w", err)
	}
	return project, nil
}

func (r *MongoRepository) List(ctx context.Context, userID string) ([]*models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due", Value: 1}})
	cur, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer cur.Close(ctx)

	projects := make([]*models.Project, 0)
	if err := cur.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("error decoding projects: %w", err)
	}
	return projects, nil
}

func (r *MongoRepository) Update(ctx context.Context, userID, id string, patch *models.ProjectPatch) (*models.Project, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Due != nil {
		set["due"] = *patch.Due
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	project := &models.Project{}
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": set},
		opts,
	).Decode(project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	return project, nil
}

func (r *MongoRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}
