package portal

import (
	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/timing"
)

// Row is one line of the trigger list, fully resolved for display: the
// timing decoded to its label and the event reference replaced by its name.
type Row struct {
	ID          string
	Name        string
	EventName   string
	TimingLabel string
	StatusBadge string
}

// Rows prepares triggers for the list view. A trigger referencing a deleted
// event shows the raw id and corrupt timing renders "Unknown"; a bad record
// never breaks the whole list.
func Rows(triggers []domain.EmailTrigger, events []domain.Event) []Row {
	names := make(map[string]string, len(events))
	for _, e := range events {
		names[e.EventID] = e.Name
	}

	rows := make([]Row, 0, len(triggers))
	for _, t := range triggers {
		eventName, ok := names[t.Event]
		if !ok {
			eventName = t.Event
		}
		badge := "Inactive"
		if t.Status == domain.TriggerActive {
			badge = "Active"
		}
		rows = append(rows, Row{
			ID:          t.TriggerID,
			Name:        t.TriggerName,
			EventName:   eventName,
			TimingLabel: timing.Label(t.Timing),
			StatusBadge: badge,
		})
	}
	return rows
}
