package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type Method string

const (
	MethodUPI          Method = "UPI"
	MethodBankTransfer Method = "Bank Transfer"
)

// MonthlyAmount is the flat collection fee charged per (month, year).
const MonthlyAmount = 100

// Payment records one monthly fee payment. At most one completed payment
// may exist per (user, month, year), enforced by a partial unique index.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"userId"`
	Month         int                `bson:"month" json:"month"`
	Year          int                `bson:"year" json:"year"`
	Amount        int                `bson:"amount" json:"amount"`
	Status        Status             `bson:"status" json:"status"`
	Method        Method             `bson:"payment_method" json:"paymentMethod"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidMethod(m Method) bool {
	return m == MethodUPI || m == MethodBankTransfer
}
