package event

import (
	"context"
	"fmt"
	"time"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/pkg/id"
	"github.com/portal360/admin-api/internal/pkg/validate"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName        = "name"
	fieldDescription = "description"
)

type Service interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	Create(ctx context.Context, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, eventID string, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, eventID string) error // hard delete
}

type eventStore interface {
	Scan(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	Put(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, eventID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, eventID string) error
}

type service struct {
	repo eventStore
}

func NewService(repo eventStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.repo.Get(ctx, eventID)
}

func (s *service) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	e := &domain.Event{
		EventID:     id.New(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, eventID string, input domain.EventInput) (*domain.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	err := s.repo.Update(ctx, eventID, map[string]interface{}{
		fieldName:        input.Name,
		fieldDescription: input.Description,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, eventID)
}

func (s *service) Delete(ctx context.Context, eventID string) error {
	return s.repo.HardDelete(ctx, eventID)
}
