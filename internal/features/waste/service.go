package waste

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WasteService interface {
	CreateRequest(ctx context.Context, userID string, classification Classification, image string) (*WasteRequest, error)
	GetRequest(ctx context.Context, id string) (*WasteRequest, error)
	ListRequests(ctx context.Context, userID string) ([]WasteRequest, error)
	ListByStatus(ctx context.Context, status Status) ([]WasteRequest, error)
	UpdateRequest(ctx context.Context, id string, status Status, scheduledDate *time.Time) (*WasteRequest, error)
}

type WasteServiceImpl struct {
	Repo WasteRequestRepository
}

func NewWasteService(repo WasteRequestRepository) WasteService {
	return &WasteServiceImpl{Repo: repo}
}

func (s *WasteServiceImpl) CreateRequest(ctx context.Context, userID string, classification Classification, image string) (*WasteRequest, error) {
	if image == "" {
		return nil, errors.New("image is required")
	}
	if classification != "" && !ValidClassification(classification) {
		return nil, errors.New("invalid classification")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	request := &WasteRequest{
		UserID:         oid,
		Image:          image,
		Classification: classification,
	}
	if err := s.Repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *WasteServiceImpl) GetRequest(ctx context.Context, id string) (*WasteRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Repo.FindByID(ctx, oid)
}

func (s *WasteServiceImpl) ListRequests(ctx context.Context, userID string) ([]WasteRequest, error) {
	filter := bson.M{}
	if userID != "" {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, errors.New("invalid user ID")
		}
		filter["user_id"] = oid
	}
	return s.Repo.FindAll(ctx, filter)
}

func (s *WasteServiceImpl) ListByStatus(ctx context.Context, status Status) ([]WasteRequest, error) {
	return s.Repo.FindAll(ctx, bson.M{"status": status})
}

func (s *WasteServiceImpl) UpdateRequest(ctx context.Context, id string, status Status, scheduledDate *time.Time) (*WasteRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	request, err := s.Repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if status != "" {
		if !ValidStatus(status) {
			return nil, errors.New("invalid status")
		}
		request.Status = status
	}
	if scheduledDate != nil {
		request.ScheduledDate = scheduledDate
	}

	if err := s.Repo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
