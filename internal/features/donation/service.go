package donation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationService interface {
	CreateDonation(ctx context.Context, userID, itemType, description, image string) (*Donation, error)
	ListDonations(ctx context.Context, userID string) ([]Donation, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Donation, error)
}

type DonationServiceImpl struct {
	Repo DonationRepository
}

func NewDonationService(repo DonationRepository) DonationService {
	return &DonationServiceImpl{Repo: repo}
}

func (s *DonationServiceImpl) CreateDonation(ctx context.Context, userID, itemType, description, image string) (*Donation, error) {
	if itemType == "" {
		return nil, errors.New("itemType is required")
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	donation := &Donation{
		UserID:      oid,
		ItemType:    itemType,
		Description: description,
		Image:       image,
	}
	if err := s.Repo.Create(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *DonationServiceImpl) ListDonations(ctx context.Context, userID string) ([]Donation, error) {
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

func (s *DonationServiceImpl) UpdateStatus(ctx context.Context, id string, status Status) (*Donation, error) {
	if !ValidStatus(status) {
		return nil, errors.New("invalid status")
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Repo.UpdateStatus(ctx, oid, status)
}
