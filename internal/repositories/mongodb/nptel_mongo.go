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

type nptelRepository struct {
	col *mongo.Collection
}

func NewNPTELMongo(db *mongo.Database) repositories.NPTELRepository {
	return &nptelRepository{col: db.Collection(models.NPTELCourse{}.CollectionName())}
}

func (r *nptelRepository) Create(ctx context.Context, course *models.NPTELCourse) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, course)
	if err != nil {
		return handleDBError(err, "create nptel course")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}
	return nil
}

func (r *nptelRepository) GetByName(ctx context.Context, courseName string) (*models.NPTELCourse, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var course models.NPTELCourse
	if err := r.col.FindOne(ctx, bson.M{"courseName": courseName}).Decode(&course); err != nil {
		return nil, handleDBError(err, "get nptel course by name")
	}
	return &course, nil
}

func (r *nptelRepository) Update(ctx context.Context, course *models.NPTELCourse) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	course.UpdatedAt = time.Now()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return handleDBError(err, "update nptel course")
	}
	if res.MatchedCount == 0 {
		return handleDBError(mongo.ErrNoDocuments, "update nptel course")
	}
	return nil
}

func (r *nptelRepository) List(ctx context.Context) ([]*models.NPTELCourse, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, handleDBError(err, "list nptel courses")
	}
	defer cursor.Close(ctx)

	courses := make([]*models.NPTELCourse, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, handleDBError(err, "decode nptel courses")
	}
	return courses, nil
}
