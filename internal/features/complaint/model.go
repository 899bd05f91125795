package complaint

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComplaintType string

const (
	TypeUserAgainstEmployee ComplaintType = "user-against-employee"
	TypeEmployeeAgainstUser ComplaintType = "employee-against-user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

type Complaint struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID  `bson:"user_id" json:"userId"`
	EmployeeID     primitive.ObjectID  `bson:"employee_id" json:"employeeId"`
	WasteRequestID *primitive.ObjectID `bson:"waste_request_id,omitempty" json:"wasteRequestId,omitempty"`
	Description    string              `bson:"description" json:"description"`
	ComplaintType  ComplaintType       `bson:"complaint_type" json:"complaintType"`
	Status         Status              `bson:"status" json:"status"`
	CreatedAt      time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updatedAt"`
}

func ValidComplaintType(t ComplaintType) bool {
	return t == TypeUserAgainstEmployee || t == TypeEmployeeAgainstUser
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusResolved, StatusRejected:
		return true
	}
	return false
}
