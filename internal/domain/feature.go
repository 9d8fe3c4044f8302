package domain

import "time"

// Feature is a platform feature or security toggle managed from the portal.
// Status uses the same active/inactive vocabulary as triggers so the UI can
// reuse its toggle affordance.
type Feature struct {
	FeatureID   string        `json:"id" dynamodbav:"feature_id"`
	Key         string        `json:"key" dynamodbav:"feature_key"`
	Name        string        `json:"name" dynamodbav:"name"`
	Description string        `json:"description" dynamodbav:"description"`
	Status      TriggerStatus `json:"status" dynamodbav:"status"`
	CreatedAt   time.Time     `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time     `json:"updated" dynamodbav:"updated_at"`
}

type FeatureInput struct {
	Key         string `json:"key" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ToggleRequest flips an entity's status. Used by the dedicated toggle
// endpoints on features, users and triggers.
type ToggleRequest struct {
	Active bool `json:"active"`
}
