package payment

import (
	"context"
	"errors"
	"time"

	"ecosnap/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Payment, error)
	FindByStatus(ctx context.Context, status Status) ([]Payment, error)
	FindCompletedByUserMonth(ctx context.Context, userID primitive.ObjectID, month, year int) (*Payment, error)
	FindAll(ctx context.Context, filter bson.M) ([]Payment, error)
	EnsureIndexes(ctx context.Context) error
}

type PaymentRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewPaymentRepository(mongodb *database.MongodbDB) PaymentRepository {
	return &PaymentRepositoryImpl{
		Collection: mongodb.DB.Collection("payments"),
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, payment)
	return err
}

func (r *PaymentRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Payment, error) {
	return r.FindAll(ctx, bson.M{"user_id": userID})
}

func (r *PaymentRepositoryImpl) FindByStatus(ctx context.Context, status Status) ([]Payment, error) {
	return r.FindAll(ctx, bson.M{"status": status})
}

func (r *PaymentRepositoryImpl) FindCompletedByUserMonth(ctx context.Context, userID primitive.ObjectID, month, year int) (*Payment, error) {
	var payment Payment
	err := r.Collection.FindOne(ctx, bson.M{
		"user_id": userID,
		"month":   month,
		"year":    year,
		"status":  StatusCompleted,
	}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindAll(ctx context.Context, filter bson.M) ([]Payment, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// EnsureIndexes creates the partial unique index that closes the
// concurrent double-payment window: two completed payments for the same
// (user, month, year) cannot both insert.
func (r *PaymentRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "month", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": StatusCompleted}),
	})
	return err
}
