package complaint

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

var ErrNotFound = errors.New("complaint not found")

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	FindAll(ctx context.Context, filter bson.M) ([]Complaint, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Complaint, error)
}

type ComplaintRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewComplaintRepository(mongodb *database.MongodbDB) ComplaintRepository {
	return &ComplaintRepositoryImpl{
		Collection: mongodb.DB.Collection("complaints"),
	}
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *Complaint) error {
	if complaint.ID.IsZero() {
		complaint.ID = primitive.NewObjectID()
	}
	now := time.Now()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now
	if complaint.Status == "" {
		complaint.Status = StatusPending
	}

	_, err := r.Collection.InsertOne(ctx, complaint)
	return err
}

func (r *ComplaintRepositoryImpl) FindAll(ctx context.Context, filter bson.M) ([]Complaint, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var complaints []Complaint
	if err = cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepositoryImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Complaint, error) {
	var complaint Complaint
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&complaint)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &complaint, nil
}
