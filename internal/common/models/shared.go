package models

import "time"

// Log is the document shape written to the "logs" collection by the
// async zap sink.
type Log struct {
	Message      string    `bson:"message" json:"message"`
	AppId        string    `bson:"app_id" json:"app_id"`
	Caller       string    `bson:"caller,omitempty" json:"caller,omitempty"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
