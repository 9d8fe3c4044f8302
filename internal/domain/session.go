package domain

import "time"

// Session is a portal sign-in. DeviceUUID is the per-browser identifier the
// client sends with every request.
type Session struct {
	SessionID             string    `json:"id" dynamodbav:"session_id"`
	UserID                string    `json:"user_id" dynamodbav:"user_id"`
	DeviceUUID            string    `json:"device_uuid" dynamodbav:"device_uuid"`
	RefreshToken          string    `json:"-" dynamodbav:"refresh_token"`
	RefreshTokenExpiresAt int64     `json:"-" dynamodbav:"refresh_token_expires_at"`
	Enable                bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt             time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt             time.Time `json:"updated" dynamodbav:"updated_at"`
	User                  *User     `json:"user,omitempty" dynamodbav:"-"`
}

type LoginRequest struct {
	Email       string `json:"email" validate:"required_without=GoogleToken,omitempty,email"`
	Password    string `json:"password" validate:"required_without=GoogleToken"`
	GoogleToken string `json:"google_token"`
	DeviceUUID  string `json:"device_uuid"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
