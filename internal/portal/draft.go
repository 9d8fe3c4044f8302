package portal

import (
	"fmt"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/timing"
)

// Draft accumulates the trigger form's state. A fresh draft starts with
// immediate timing and active status; name and event have no defaults and
// Build rejects a draft that never selected them.
type Draft struct {
	name       string
	message    string
	eventID    string
	timingCode string
	active     bool
}

func NewDraft() *Draft {
	return &Draft{timingCode: "immediate", active: true}
}

// EditDraft prefills a draft from an existing trigger for the edit form.
// A trigger whose stored timing no longer encodes is rejected here rather
// than silently reset.
func EditDraft(t *domain.EmailTrigger) (*Draft, error) {
	code, err := timing.Encode(t.Timing)
	if err != nil {
		return nil, fmt.Errorf("trigger %s has unusable timing: %w", t.TriggerID, err)
	}
	return &Draft{
		name:       t.TriggerName,
		message:    t.Message,
		eventID:    t.Event,
		timingCode: code,
		active:     t.Status == domain.TriggerActive,
	}, nil
}

func (d *Draft) SetName(name string)       { d.name = name }
func (d *Draft) SetMessage(message string) { d.message = message }
func (d *Draft) SelectEvent(eventID string) { d.eventID = eventID }

// SelectTiming accepts a flat timing code. Codes outside the grammar are
// rejected and leave the previous selection untouched.
func (d *Draft) SelectTiming(code string) error {
	if _, err := timing.Decode(code); err != nil {
		return err
	}
	d.timingCode = code
	return nil
}

// ToggleStatus sets the draft's activation state.
func (d *Draft) ToggleStatus(active bool) { d.active = active }

// Build assembles the submit payload. It fails closed: a missing name or
// event, or a timing code that no longer decodes, yields an error and no
// payload.
func (d *Draft) Build() (domain.EmailTriggerInput, error) {
	if d.name == "" {
		return domain.EmailTriggerInput{}, fmt.Errorf("trigger name is required: %w", domain.ErrBadRequest)
	}
	if d.eventID == "" {
		return domain.EmailTriggerInput{}, fmt.Errorf("an event must be selected: %w", domain.ErrBadRequest)
	}
	desc, err := timing.Decode(d.timingCode)
	if err != nil {
		return domain.EmailTriggerInput{}, err
	}
	status := domain.TriggerInactive
	if d.active {
		status = domain.TriggerActive
	}
	return domain.EmailTriggerInput{
		TriggerName: d.name,
		Event:       d.eventID,
		Timing:      desc,
		Message:     d.message,
		Status:      status,
	}, nil
}
