package portal

import (
	"testing"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows_ResolvesEventAndTiming(t *testing.T) {
	triggers := []domain.EmailTrigger{
		{
			TriggerID:   "tr-1",
			TriggerName: "welcome",
			Event:       "evt-1",
			Timing:      timing.Immediate(),
			Status:      domain.TriggerActive,
		},
		{
			TriggerID:   "tr-2",
			TriggerName: "trial reminder",
			Event:       "evt-2",
			Timing:      timing.Descriptor{Type: timing.TypeBefore, Unit: timing.UnitDay, Value: 2},
			Status:      domain.TriggerInactive,
		},
	}
	events := []domain.Event{
		{EventID: "evt-1", Name: "User signed up"},
		{EventID: "evt-2", Name: "Trial expiring"},
	}

	rows := Rows(triggers, events)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{
		ID:          "tr-1",
		Name:        "welcome",
		EventName:   "User signed up",
		TimingLabel: "Immediately",
		StatusBadge: "Active",
	}, rows[0])
	assert.Equal(t, Row{
		ID:          "tr-2",
		Name:        "trial reminder",
		EventName:   "Trial expiring",
		TimingLabel: "2 days before event",
		StatusBadge: "Inactive",
	}, rows[1])
}

func TestRows_MissingEventShowsRawID(t *testing.T) {
	rows := Rows([]domain.EmailTrigger{
		{TriggerID: "tr-1", Event: "evt-gone", Timing: timing.Immediate()},
	}, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "evt-gone", rows[0].EventName)
}

func TestRows_CorruptTimingRendersUnknown(t *testing.T) {
	rows := Rows([]domain.EmailTrigger{
		{TriggerID: "tr-1", Event: "evt-1", Timing: timing.Descriptor{Type: "sometime"}},
	}, []domain.Event{{EventID: "evt-1", Name: "User signed up"}})

	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0].TimingLabel)
}
