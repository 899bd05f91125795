package donation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusAssigned  Status = "assigned"
	StatusClaimed   Status = "claimed"
)

// Donation is a citizen-submitted offer of reusable goods. Assignment and
// claiming are driven by the task workflow.
type Donation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"userId"`
	ItemType       string             `bson:"item_type" json:"itemType"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	CollectionDate *time.Time         `bson:"collection_date,omitempty" json:"collectionDate,omitempty"`
	Status         Status             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusClaimed:
		return true
	}
	return false
}
