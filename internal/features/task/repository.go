package task

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

var ErrNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Task, error)
	FindAll(ctx context.Context, filter bson.M) ([]Task, error)
	FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]Task, error)
	FindAssignedByRequest(ctx context.Context, requestID primitive.ObjectID) (*Task, error)
	FindByDonation(ctx context.Context, donationID primitive.ObjectID) (*Task, error)
	FindCompletedSince(ctx context.Context, since time.Time) ([]Task, error)
	FindAssignedBetween(ctx context.Context, from, to time.Time) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}

type TaskRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTaskRepository(mongodb *database.MongodbDB) TaskRepository {
	return &TaskRepositoryImpl{
		Collection: mongodb.DB.Collection("tasks"),
	}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.AssignedAt.IsZero() {
		task.AssignedAt = now
	}
	if task.Status == "" {
		task.Status = StatusAssigned
	}

	_, err := r.Collection.InsertOne(ctx, task)
	return err
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Task, error) {
	var task Task
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindAll(ctx context.Context, filter bson.M) ([]Task, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]Task, error) {
	return r.FindAll(ctx, bson.M{"employee_id": employeeID})
}

func (r *TaskRepositoryImpl) FindAssignedByRequest(ctx context.Context, requestID primitive.ObjectID) (*Task, error) {
	var task Task
	err := r.Collection.FindOne(ctx, bson.M{
		"request_id": requestID,
		"status":     StatusAssigned,
	}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindByDonation(ctx context.Context, donationID primitive.ObjectID) (*Task, error) {
	var task Task
	err := r.Collection.FindOne(ctx, bson.M{"donation_id": donationID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindCompletedSince(ctx context.Context, since time.Time) ([]Task, error) {
	return r.FindAll(ctx, bson.M{
		"status":       StatusCompleted,
		"completed_at": bson.M{"$gte": since},
	})
}

func (r *TaskRepositoryImpl) FindAssignedBetween(ctx context.Context, from, to time.Time) ([]Task, error) {
	return r.FindAll(ctx, bson.M{
		"status":         StatusAssigned,
		"scheduled_date": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now()
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return r.Collection.CountDocuments(ctx, bson.M{"status": status})
}
