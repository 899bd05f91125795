package task

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Kind string

const (
	KindWaste    Kind = "waste"
	KindDonation Kind = "donation"
)

// Task assigns an employee to exactly one of a WasteRequest or a Donation.
// Use NewWasteTask / NewDonationTask so only one reference is ever set.
type Task struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EmployeeID    primitive.ObjectID  `bson:"employee_id" json:"employeeId"`
	RequestID     *primitive.ObjectID `bson:"request_id,omitempty" json:"requestId,omitempty"`
	DonationID    *primitive.ObjectID `bson:"donation_id,omitempty" json:"donationId,omitempty"`
	Status        Status              `bson:"status" json:"status"`
	ScheduledDate *time.Time          `bson:"scheduled_date,omitempty" json:"scheduledDate,omitempty"`
	AssignedAt    time.Time           `bson:"assigned_at" json:"assignedAt"`
	CompletedAt   *time.Time          `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
}

func NewWasteTask(employeeID, requestID primitive.ObjectID, scheduledDate *time.Time) *Task {
	return &Task{
		EmployeeID:    employeeID,
		RequestID:     &requestID,
		Status:        StatusAssigned,
		ScheduledDate: scheduledDate,
		AssignedAt:    time.Now(),
	}
}

func NewDonationTask(employeeID, donationID primitive.ObjectID, collectionDate *time.Time) *Task {
	return &Task{
		EmployeeID:    employeeID,
		DonationID:    &donationID,
		Status:        StatusAssigned,
		ScheduledDate: collectionDate,
		AssignedAt:    time.Now(),
	}
}

func (t *Task) Kind() Kind {
	if t.RequestID != nil {
		return KindWaste
	}
	return KindDonation
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}
