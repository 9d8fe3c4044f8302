package domain

import "time"

// Portal roles. Admin can mutate anything; viewer has read-only access.
// Member is an ordinary platform user with no portal access.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
	RoleMember = "member"
)

// User is a platform account managed from the portal. Admin and viewer
// accounts can also sign in to the portal itself.
type User struct {
	UserID       string        `json:"id" dynamodbav:"user_id"`
	Email        string        `json:"email" dynamodbav:"email"`
	PasswordHash string        `json:"-" dynamodbav:"password_hash"`
	FullName     string        `json:"fullName" dynamodbav:"full_name"`
	Organization string        `json:"organization,omitempty" dynamodbav:"organization"`
	Role         string        `json:"role" dynamodbav:"role"`
	AuthProvider string        `json:"auth_provider,omitempty" dynamodbav:"auth_provider"` // "local" | "google"
	GoogleSub    string        `json:"-" dynamodbav:"google_sub"`
	Status       TriggerStatus `json:"status" dynamodbav:"status"`
	DeletedAt    *time.Time    `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt    time.Time     `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time     `json:"updated" dynamodbav:"updated_at"`
}

type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	FullName     string `json:"fullName" validate:"required"`
	Organization string `json:"organization"`
	Role         string `json:"role" validate:"required,oneof=admin viewer member"`
}

type UpdateUserRequest struct {
	Email        *string `json:"email" validate:"omitempty,email"`
	FullName     *string `json:"fullName"`
	Organization *string `json:"organization"`
	Role         *string `json:"role" validate:"omitempty,oneof=admin viewer member"`
}
