package domain

import (
	"time"

	"github.com/portal360/admin-api/internal/timing"
)

// TriggerStatus is the activation state of an email trigger.
type TriggerStatus string

const (
	TriggerActive   TriggerStatus = "active"
	TriggerInactive TriggerStatus = "inactive"
)

// EmailTrigger is a named rule describing when and with what message an
// email notification should be sent for a platform event. The portal only
// configures triggers; the delivery engine lives elsewhere.
type EmailTrigger struct {
	TriggerID   string            `json:"id" dynamodbav:"trigger_id"`
	TriggerName string            `json:"triggerName" dynamodbav:"trigger_name"`
	Event       string            `json:"event" dynamodbav:"event_id"`
	Timing      timing.Descriptor `json:"timing" dynamodbav:"timing"`
	Message     string            `json:"message" dynamodbav:"message"`
	Status      TriggerStatus     `json:"status" dynamodbav:"status"`
	CreatedAt   time.Time         `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time         `json:"updated" dynamodbav:"updated_at"`
}

// EmailTriggerInput is the create/update payload. Message is the only
// optional field; an empty event reference is rejected rather than stored.
type EmailTriggerInput struct {
	TriggerName string            `json:"triggerName" validate:"required"`
	Event       string            `json:"event" validate:"required"`
	Timing      timing.Descriptor `json:"timing"`
	Message     string            `json:"message"`
	Status      TriggerStatus     `json:"status" validate:"required,oneof=active inactive"`
}

// TriggerTestSendRequest asks the API to send a trigger's template to a
// single address for review.
type TriggerTestSendRequest struct {
	To string `json:"to" validate:"required,email"`
}
