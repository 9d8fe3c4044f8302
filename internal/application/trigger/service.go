package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/pkg/id"
	"github.com/portal360/admin-api/internal/pkg/validate"
	"github.com/portal360/admin-api/internal/timing"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldTriggerName = "trigger_name"
	fieldEventID     = "event_id"
	fieldTiming      = "timing"
	fieldMessage     = "message"
	fieldStatus      = "status"
)

type Service interface {
	List(ctx context.Context) ([]domain.EmailTrigger, error)
	Get(ctx context.Context, triggerID string) (*domain.EmailTrigger, error)
	Create(ctx context.Context, input domain.EmailTriggerInput) (*domain.EmailTrigger, error)
	Update(ctx context.Context, triggerID string, input domain.EmailTriggerInput) (*domain.EmailTrigger, error)
	Delete(ctx context.Context, triggerID string) error
	Toggle(ctx context.Context, triggerID string, active bool) (*domain.EmailTrigger, error)
	SendTest(ctx context.Context, triggerID, to string) error
}

type triggerStore interface {
	Scan(ctx context.Context) ([]domain.EmailTrigger, error)
	Get(ctx context.Context, triggerID string) (*domain.EmailTrigger, error)
	Put(ctx context.Context, t *domain.EmailTrigger) error
	Update(ctx context.Context, triggerID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, triggerID string) error
}

type eventStore interface {
	Get(ctx context.Context, eventID string) (*domain.Event, error)
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type announcer interface {
	Announce(ctx context.Context, entity, action, id string) error
}

type service struct {
	repo      triggerStore
	events    eventStore
	mailer    mailer
	announcer announcer
}

// NewService builds the trigger service. mailer and announcer may be nil;
// test-sends then fail with an explicit error and announcements are skipped.
func NewService(repo triggerStore, events eventStore, mailer mailer, announcer announcer) Service {
	return &service{repo: repo, events: events, mailer: mailer, announcer: announcer}
}

func (s *service) List(ctx context.Context) ([]domain.EmailTrigger, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, triggerID string) (*domain.EmailTrigger, error) {
	return s.repo.Get(ctx, triggerID)
}

func (s *service) Create(ctx context.Context, input domain.EmailTriggerInput) (*domain.EmailTrigger, error) {
	if err := s.checkInput(ctx, input); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t := &domain.EmailTrigger{
		TriggerID:   id.New(),
		TriggerName: input.TriggerName,
		Event:       input.Event,
		Timing:      input.Timing,
		Message:     input.Message,
		Status:      input.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, t); err != nil {
		return nil, err
	}
	s.announce(ctx, "created", t.TriggerID)
	return t, nil
}

// Update replaces the whole record; the portal form always submits every
// field (no partial PATCH for triggers).
func (s *service) Update(ctx context.Context, triggerID string, input domain.EmailTriggerInput) (*domain.EmailTrigger, error) {
	if err := s.checkInput(ctx, input); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, triggerID); err != nil {
		return nil, err
	}
	err := s.repo.Update(ctx, triggerID, map[string]interface{}{
		fieldTriggerName: input.TriggerName,
		fieldEventID:     input.Event,
		fieldTiming:      input.Timing,
		fieldMessage:     input.Message,
		fieldStatus:      string(input.Status),
	})
	if err != nil {
		return nil, err
	}
	s.announce(ctx, "updated", triggerID)
	return s.repo.Get(ctx, triggerID)
}

func (s *service) Delete(ctx context.Context, triggerID string) error {
	if _, err := s.repo.Get(ctx, triggerID); err != nil {
		return err
	}
	if err := s.repo.HardDelete(ctx, triggerID); err != nil {
		return err
	}
	s.announce(ctx, "deleted", triggerID)
	return nil
}

// Toggle flips only the status field. Concurrent toggles are not serialised
// client-side; the last write wins, which matches the portal's behaviour.
func (s *service) Toggle(ctx context.Context, triggerID string, active bool) (*domain.EmailTrigger, error) {
	status := domain.TriggerInactive
	if active {
		status = domain.TriggerActive
	}
	if err := s.repo.Update(ctx, triggerID, map[string]interface{}{fieldStatus: string(status)}); err != nil {
		return nil, err
	}
	s.announce(ctx, "toggled", triggerID)
	return s.repo.Get(ctx, triggerID)
}

func (s *service) SendTest(ctx context.Context, triggerID, to string) error {
	if s.mailer == nil {
		return fmt.Errorf("mailer not configured: %w", domain.ErrBadRequest)
	}
	t, err := s.repo.Get(ctx, triggerID)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("[test] %s (%s)", t.TriggerName, timing.Label(t.Timing))
	return s.mailer.SendEmail(to, subject, t.Message)
}

// checkInput validates the submitted payload, including the fail-closed
// event-existence check: a trigger referencing a missing or empty event is
// rejected rather than stored.
func (s *service) checkInput(ctx context.Context, input domain.EmailTriggerInput) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if err := input.Timing.Validate(); err != nil {
		return fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if _, err := s.events.Get(ctx, input.Event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown event %q: %w", input.Event, domain.ErrBadRequest)
		}
		return err
	}
	return nil
}

// announce is best-effort: a failed publish never fails the mutation.
func (s *service) announce(ctx context.Context, action, triggerID string) {
	if s.announcer == nil {
		return
	}
	if err := s.announcer.Announce(ctx, "email-trigger", action, triggerID); err != nil {
		slog.Warn("trigger announcement failed", "action", action, "trigger_id", triggerID, "err", err)
	}
}
