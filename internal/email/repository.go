package email

import (
	"context"
	"time"

	"ecosnap/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmailRepository struct {
	Collection *mongo.Collection
}

func NewEmailRepository(mongodb *database.MongodbDB) *EmailRepository {
	return &EmailRepository{
		Collection: mongodb.DB.Collection("emails"),
	}
}

func (r *EmailRepository) Create(ctx context.Context, email *Email) error {
	if email.ID.IsZero() {
		email.ID = primitive.NewObjectID()
	}
	email.SentAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, email)
	return err
}

func (r *EmailRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status EmailStatus, errMsg string) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "error": errMsg}},
	)
	return err
}
