package waste

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Classification string

const (
	ClassificationPlastic Classification = "plastic"
	ClassificationGlass   Classification = "glass"
)

type Status string

const (
	// StatusPaymented means billing is confirmed for the request's
	// period; it gates task assignment.
	StatusPending   Status = "pending"
	StatusPaymented Status = "Paymented"
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

// WasteRequest is one citizen-submitted pickup request. Status transitions
// are driven externally by payment confirmation and task assignment.
type WasteRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"userId"`
	Image          string             `bson:"image" json:"image"`
	Classification Classification     `bson:"classification" json:"classification"`
	Status         Status             `bson:"status" json:"status"`
	ScheduledDate  *time.Time         `bson:"scheduled_date,omitempty" json:"scheduledDate,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidClassification(c Classification) bool {
	return c == ClassificationPlastic || c == ClassificationGlass
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaymented, StatusScheduled, StatusCompleted:
		return true
	}
	return false
}
