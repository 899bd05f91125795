package email

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmailStatus string

const (
	EmailQueued EmailStatus = "queued"
	EmailSent   EmailStatus = "sent"
	EmailFailed EmailStatus = "failed"
)

// Email is the send-audit record kept for every outgoing mail.
type Email struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	From     string             `bson:"from" json:"from"`
	To       []string           `bson:"to" json:"to"`
	Subject  string             `bson:"subject" json:"subject"`
	HtmlBody string             `bson:"html_body" json:"html_body"`
	Status   EmailStatus        `bson:"status" json:"status"`
	Error    string             `bson:"error,omitempty" json:"error,omitempty"`
	SentAt   time.Time          `bson:"sent_at" json:"sent_at"`
}
