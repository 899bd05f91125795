package waste

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

var ErrNotFound = errors.New("waste request not found")

// MonthStatusCount is one row of the dashboard grouping aggregation.
type MonthStatusCount struct {
	Month  int    `bson:"month"`
	Status Status `bson:"status"`
	Count  int64  `bson:"count"`
}

type WasteRequestRepository interface {
	Create(ctx context.Context, request *WasteRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*WasteRequest, error)
	FindAll(ctx context.Context, filter bson.M) ([]WasteRequest, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]WasteRequest, error)
	FindScheduledBetween(ctx context.Context, from, to time.Time) ([]WasteRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, scheduledDate *time.Time) error
	Update(ctx context.Context, request *WasteRequest) error
	MarkPaymentedForRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	MonthlyStatusCounts(ctx context.Context, year int) ([]MonthStatusCount, error)
}

type WasteRequestRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewWasteRequestRepository(mongodb *database.MongodbDB) WasteRequestRepository {
	return &WasteRequestRepositoryImpl{
		Collection: mongodb.DB.Collection("wasterequests"),
	}
}

func (r *WasteRequestRepositoryImpl) Create(ctx context.Context, request *WasteRequest) error {
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	if request.Status == "" {
		request.Status = StatusPending
	}
	if request.Classification == "" {
		request.Classification = ClassificationPlastic
	}

	_, err := r.Collection.InsertOne(ctx, request)
	return err
}

func (r *WasteRequestRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*WasteRequest, error) {
	var request WasteRequest
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *WasteRequestRepositoryImpl) FindAll(ctx context.Context, filter bson.M) ([]WasteRequest, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []WasteRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *WasteRequestRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]WasteRequest, error) {
	return r.FindAll(ctx, bson.M{"user_id": userID})
}

func (r *WasteRequestRepositoryImpl) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]WasteRequest, error) {
	return r.FindAll(ctx, bson.M{
		"status":         StatusScheduled,
		"scheduled_date": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *WasteRequestRepositoryImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, scheduledDate *time.Time) error {
	set := bson.M{"status": status, "updated_at": time.Now()}
	if scheduledDate != nil {
		set["scheduled_date"] = *scheduledDate
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

func (r *WasteRequestRepositoryImpl) Update(ctx context.Context, request *WasteRequest) error {
	request.UpdatedAt = time.Now()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": request.ID}, request)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WasteRequestRepositoryImpl) MarkPaymentedForRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (int64, error) {
	result, err := r.Collection.UpdateMany(ctx,
		bson.M{
			"user_id":    userID,
			"created_at": bson.M{"$gte": from, "$lte": to},
		},
		bson.M{"$set": bson.M{"status": StatusPaymented, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *WasteRequestRepositoryImpl) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{"status": status})
}

// MonthlyStatusCounts groups requests created in the given year into
// (month, status) buckets for the dashboard chart.
func (r *WasteRequestRepositoryImpl) MonthlyStatusCounts(ctx context.Context, year int) ([]MonthStatusCount, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": start, "$lt": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"month":  bson.M{"$month": "$created_at"},
				"status": "$status",
			},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":    0,
			"month":  "$_id.month",
			"status": "$_id.status",
			"count":  1,
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []MonthStatusCount
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
