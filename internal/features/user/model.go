package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleEmployee Role = "employee"
)

// GeoPoint is a GeoJSON point ([longitude, latitude])
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// User is the unified record for citizens and employees, distinguished by
// Role. Employee-only fields are pointers with omitempty so citizen
// documents never carry them.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	Role          Role               `bson:"role" json:"role"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Location      *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	ProfileImage  string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	PaymentStatus string             `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`
	IsActive      bool               `bson:"is_active" json:"isActive"`

	// Employee-only fields
	EmployeeID    *string `bson:"employee_id,omitempty" json:"employeeId,omitempty"`
	WardNumber    *string `bson:"ward_number,omitempty" json:"wardNumber,omitempty"`
	AadhaarNumber *string `bson:"aadhaar_number,omitempty" json:"aadhaarNumber,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
