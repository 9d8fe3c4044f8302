package feature

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/pkg/id"
	"github.com/portal360/admin-api/internal/pkg/validate"
)

const fieldStatus = "status"

type Service interface {
	List(ctx context.Context) ([]domain.Feature, error)
	Create(ctx context.Context, input domain.FeatureInput) (*domain.Feature, error)
	// Toggle flips the feature's status and returns the stored record so the
	// portal can reconcile its optimistic UI state.
	Toggle(ctx context.Context, featureID string, active bool) (*domain.Feature, error)
}

type featureStore interface {
	Scan(ctx context.Context) ([]domain.Feature, error)
	Get(ctx context.Context, featureID string) (*domain.Feature, error)
	Put(ctx context.Context, f *domain.Feature) error
	Update(ctx context.Context, featureID string, updates map[string]interface{}) error
}

type announcer interface {
	Announce(ctx context.Context, entity, action, id string) error
}

type service struct {
	repo      featureStore
	announcer announcer
}

func NewService(repo featureStore, announcer announcer) Service {
	return &service{repo: repo, announcer: announcer}
}

func (s *service) List(ctx context.Context) ([]domain.Feature, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Create(ctx context.Context, input domain.FeatureInput) (*domain.Feature, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	f := &domain.Feature{
		FeatureID:   id.New(),
		Key:         input.Key,
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.TriggerInactive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Toggle(ctx context.Context, featureID string, active bool) (*domain.Feature, error) {
	status := domain.TriggerInactive
	if active {
		status = domain.TriggerActive
	}
	if err := s.repo.Update(ctx, featureID, map[string]interface{}{fieldStatus: string(status)}); err != nil {
		return nil, err
	}
	if s.announcer != nil {
		if err := s.announcer.Announce(ctx, "feature", "toggled", featureID); err != nil {
			slog.Warn("feature announcement failed", "feature_id", featureID, "err", err)
		}
	}
	return s.repo.Get(ctx, featureID)
}
