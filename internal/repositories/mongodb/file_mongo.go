package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opencampus-in/studyportal-service/internal/models"
	"github.com/opencampus-in/studyportal-service/internal/repositories"
)

type fileRepository struct {
	col *mongo.Collection
}

func NewFileMongo(db *mongo.Database) repositories.FileRepository {
	return &fileRepository{col: db.Collection(models.FileRecord{}.CollectionName())}
}

func (r *fileRepository) Create(ctx context.Context, file *models.FileRecord) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	file.CreatedAt = time.Now()

	res, err := r.col.InsertOne(ctx, file)
	if err != nil {
		return handleDBError(err, "create file record")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		file.ID = oid
	}
	return nil
}

func (r *fileRepository) GetByID(ctx context.Context, id string) (*models.FileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, handleDBError(mongo.ErrNoDocuments, "get file record by id")
	}

	var file models.FileRecord
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&file); err != nil {
		return nil, handleDBError(err, "get file record by id")
	}
	return &file, nil
}

func (r *fileRepository) List(ctx context.Context) ([]*models.FileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, handleDBError(err, "list file records")
	}
	defer cursor.Close(ctx)

	files := make([]*models.FileRecord, 0)
	if err := cursor.All(ctx, &files); err != nil {
		return nil, handleDBError(err, "decode file records")
	}
	return files, nil
}
