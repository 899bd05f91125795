package donation

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

var ErrNotFound = errors.New("donation not found")

type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Donation, error)
	FindAll(ctx context.Context, filter bson.M) ([]Donation, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Donation, error)
	FindCollectionBetween(ctx context.Context, from, to time.Time) ([]Donation, error)
	MarkAssigned(ctx context.Context, id primitive.ObjectID, collectionDate *time.Time) error
	MarkClaimed(ctx context.Context, id primitive.ObjectID) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Donation, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

type DonationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDonationRepository(mongodb *database.MongodbDB) DonationRepository {
	return &DonationRepositoryImpl{
		Collection: mongodb.DB.Collection("donations"),
	}
}

func (r *DonationRepositoryImpl) Create(ctx context.Context, donation *Donation) error {
	if donation.ID.IsZero() {
		donation.ID = primitive.NewObjectID()
	}
	now := time.Now()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	if donation.Status == "" {
		donation.Status = StatusAvailable
	}

	_, err := r.Collection.InsertOne(ctx, donation)
	return err
}

func (r *DonationRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Donation, error) {
	var donation Donation
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepositoryImpl) FindAll(ctx context.Context, filter bson.M) ([]Donation, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var donations []Donation
	if err = cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Donation, error) {
	return r.FindAll(ctx, bson.M{"user_id": userID})
}

func (r *DonationRepositoryImpl) FindCollectionBetween(ctx context.Context, from, to time.Time) ([]Donation, error) {
	return r.FindAll(ctx, bson.M{
		"status":          StatusAssigned,
		"collection_date": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *DonationRepositoryImpl) MarkAssigned(ctx context.Context, id primitive.ObjectID, collectionDate *time.Time) error {
	set := bson.M{"status": StatusAssigned, "updated_at": time.Now()}
	if collectionDate != nil {
		set["collection_date"] = *collectionDate
	}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DonationRepositoryImpl) MarkClaimed(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": StatusClaimed, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DonationRepositoryImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Donation, error) {
	var donation Donation
	err := r.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepositoryImpl) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{"status": status})
}
