package http

import (
	"context"
	"io"
	"time"

	"github.com/portal360/admin-api/internal/domain"
)

// TriggerRepository is the minimal interface the router requires from a trigger store.
type TriggerRepository interface {
	Scan(ctx context.Context) ([]domain.EmailTrigger, error)
	Get(ctx context.Context, triggerID string) (*domain.EmailTrigger, error)
	Put(ctx context.Context, t *domain.EmailTrigger) error
	Update(ctx context.Context, triggerID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, triggerID string) error
}

// EventRepository is the minimal interface the router requires from an event store.
type EventRepository interface {
	Scan(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	Put(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, eventID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, eventID string) error
}

// FeatureRepository is the minimal interface the router requires from a feature store.
type FeatureRepository interface {
	Scan(ctx context.Context) ([]domain.Feature, error)
	Get(ctx context.Context, featureID string) (*domain.Feature, error)
	Put(ctx context.Context, f *domain.Feature) error
	Update(ctx context.Context, featureID string, updates map[string]interface{}) error
}

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.User, string, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, userID string) error
}

// SessionRepository is the minimal interface the router requires from a session store.
type SessionRepository interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error)
	RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error
	Update(ctx context.Context, sessionID string, updates map[string]interface{}) error
	SoftDeleteByUser(ctx context.Context, userID string) error
}

// ContentRepository is the minimal interface the router requires from a content-asset store.
type ContentRepository interface {
	Put(ctx context.Context, a *domain.ContentAsset) error
	Get(ctx context.Context, assetID string) (*domain.ContentAsset, error)
	SoftDelete(ctx context.Context, assetID string) error
}

// ObjectStore is the minimal interface the router requires from an object storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
