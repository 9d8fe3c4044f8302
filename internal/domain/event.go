package domain

import "time"

// Event is a catalog entry for a platform occurrence ("trial expiring",
// "user signed up") that email triggers reference by id.
type Event struct {
	EventID     string    `json:"id" dynamodbav:"event_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description" dynamodbav:"description"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type EventInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
