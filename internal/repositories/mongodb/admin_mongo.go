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

type adminRepository struct {
	col *mongo.Collection
}

func NewAdminMongo(db *mongo.Database) repositories.AdminRepository {
	return &adminRepository{col: db.Collection(models.Admin{}.CollectionName())}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	admin.CreatedAt = time.Now()

	res, err := r.col.InsertOne(ctx, admin)
	if err != nil {
		return handleDBError(err, "create admin")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func (r *adminRepository) List(ctx context.Context) ([]*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, handleDBError(err, "list admins")
	}
	defer cursor.Close(ctx)

	admins := make([]*models.Admin, 0)
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, handleDBError(err, "decode admins")
	}
	return admins, nil
}
