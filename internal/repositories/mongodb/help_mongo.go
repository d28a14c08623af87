package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
)

type helpRepository struct {
	col *mongo.Collection
}

func NewHelpMongo(db *mongo.Database) repositories.HelpRepository {
	return &helpRepository{col: db.Collection(models.Help{}.CollectionName())}
}

func (r *helpRepository) Create(ctx context.Context, help *models.Help) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	help.CreatedAt = time.Now()

	res, err := r.col.InsertOne(ctx, help)
	if err != nil {
		return handleDBError(err, "create help entry")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		help.ID = oid
	}
	return nil
}

func (r *helpRepository) List(ctx context.Context) ([]*models.Help, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, handleDBError(err, "list help entries")
	}
	defer cursor.Close(ctx)

	helps := make([]*models.Help, 0)
	if err := cursor.All(ctx, &helps); err != nil {
		return nil, handleDBError(err, "decode help entries")
	}
	return helps, nil
}
