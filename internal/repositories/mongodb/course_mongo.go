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

type courseRepository struct {
	col *mongo.Collection
}

func NewCourseMongo(db *mongo.Database) repositories.CourseRepository {
	return &courseRepository{col: db.Collection(models.Course{}.CollectionName())}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, course)
	if err != nil {
		return handleDBError(err, "create course")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}
	return nil
}

func (r *courseRepository) GetByName(ctx context.Context, courseName string) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var course models.Course
	if err := r.col.FindOne(ctx, bson.M{"courseName": courseName}).Decode(&course); err != nil {
		return nil, handleDBError(err, "get course by name")
	}
	return &course, nil
}

// Update replaces the whole parent document. Appends to embedded semesters
// are persisted as a single atomic document write.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	course.UpdatedAt = time.Now()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return handleDBError(err, "update course")
	}
	if res.MatchedCount == 0 {
		return handleDBError(mongo.ErrNoDocuments, "update course")
	}
	return nil
}

func (r *courseRepository) List(ctx context.Context) ([]*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, handleDBError(err, "list courses")
	}
	defer cursor.Close(ctx)

	courses := make([]*models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, handleDBError(err, "decode courses")
	}
	return courses, nil
}
