package complaint

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FileComplaintInput struct {
	UserID         string
	EmployeeID     string
	WasteRequestID string
	Description    string
	ComplaintType  ComplaintType
}

type ComplaintService interface {
	FileComplaint(ctx context.Context, input FileComplaintInput) (*Complaint, error)
	ListComplaints(ctx context.Context) ([]Complaint, error)
	ListByUser(ctx context.Context, userID string) ([]Complaint, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Complaint, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Complaint, error)
}

type ComplaintServiceImpl struct {
	Repo ComplaintRepository
}

func NewComplaintService(repo ComplaintRepository) ComplaintService {
	return &ComplaintServiceImpl{Repo: repo}
}

func (s *ComplaintServiceImpl) FileComplaint(ctx context.Context, input FileComplaintInput) (*Complaint, error) {
	if !ValidComplaintType(input.ComplaintType) {
		return nil, errors.New("invalid complaint type")
	}
	if input.Description == "" {
		return nil, errors.New("description is required")
	}

	userID, err := primitive.ObjectIDFromHex(input.UserID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	employeeID, err := primitive.ObjectIDFromHex(input.EmployeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}

	complaint := &Complaint{
		UserID:        userID,
		EmployeeID:    employeeID,
		Description:   input.Description,
		ComplaintType: input.ComplaintType,
	}
	if input.WasteRequestID != "" {
		requestID, err := primitive.ObjectIDFromHex(input.WasteRequestID)
		if err != nil {
			return nil, errors.New("invalid waste request ID")
		}
		complaint.WasteRequestID = &requestID
	}

	if err := s.Repo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *ComplaintServiceImpl) ListComplaints(ctx context.Context) ([]Complaint, error) {
	return s.Repo.FindAll(ctx, bson.M{})
}

func (s *ComplaintServiceImpl) ListByUser(ctx context.Context, userID string) ([]Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.Repo.FindAll(ctx, bson.M{"user_id": oid})
}

func (s *ComplaintServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, errors.New("invalid employee ID")
	}
	return s.Repo.FindAll(ctx, bson.M{"employee_id": oid})
}

func (s *ComplaintServiceImpl) UpdateStatus(ctx context.Context, id string, status Status) (*Complaint, error) {
	if !ValidStatus(status) {
		return nil, errors.New("invalid status")
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Repo.UpdateStatus(ctx, oid, status)
}
