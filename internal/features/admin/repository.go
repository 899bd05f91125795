package admin

import (
	"context"
	"errors"
	"time"

	"ecosnap/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("admin not found")

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindAll(ctx context.Context) ([]Admin, error)
}

type AdminRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAdminRepository(mongodb *database.MongodbDB) AdminRepository {
	return &AdminRepositoryImpl{
		Collection: mongodb.DB.Collection("admins"),
	}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, admin)
	return err
}

func (r *AdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) FindAll(ctx context.Context) ([]Admin, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []Admin
	if err = cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}
