package timing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Immediate(t *testing.T) {
	d, err := Decode("immediate")
	require.NoError(t, err)
	assert.Equal(t, TypeImmediate, d.Type)
	assert.Equal(t, UnitNone, d.Unit)
	assert.Equal(t, 0, d.Value)
}

func TestDecode_AfterDay(t *testing.T) {
	d, err := Decode("after_day_2")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Type: TypeAfter, Unit: UnitDay, Value: 2}, d)
}

func TestDecode_BeforeHour(t *testing.T) {
	d, err := Decode("before_hour_1")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Type: TypeBefore, Unit: UnitHour, Value: 1}, d)
}

func TestDecode_AcceptsValuesBeyondMenu(t *testing.T) {
	d, err := Decode("after_day_14")
	require.NoError(t, err)
	assert.Equal(t, 14, d.Value)
}

func TestDecode_Malformed(t *testing.T) {
	for _, code := range []string{
		"",
		"after_day_",
		"after_day_0",
		"after_day_-1",
		"sometime_day_1",
		"after_week_1",
		"after_day",
		"after_day_1_extra",
		"Immediate",
	} {
		d, err := Decode(code)
		assert.ErrorIs(t, err, ErrInvalidCode, "code %q", code)
		assert.True(t, d.IsZero(), "no partial descriptor for %q", code)
	}
}

func TestRoundTrip_WholeMenu(t *testing.T) {
	for _, opt := range Menu() {
		d, err := Decode(opt.Code)
		require.NoError(t, err)
		require.NoError(t, d.Validate())

		code, err := Encode(d)
		require.NoError(t, err)
		assert.Equal(t, opt.Code, code)

		back, err := Decode(code)
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestEncode_Idempotent(t *testing.T) {
	d := Descriptor{Type: TypeBefore, Unit: UnitDay, Value: 2}
	first, err := Encode(d)
	require.NoError(t, err)
	second, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_RejectsInconsistentDescriptor(t *testing.T) {
	for _, d := range []Descriptor{
		{Type: TypeImmediate, Unit: UnitDay, Value: 0},
		{Type: TypeImmediate, Unit: UnitNone, Value: 1},
		{Type: TypeAfter, Unit: UnitNone, Value: 1},
		{Type: TypeAfter, Unit: UnitDay, Value: 0},
		{Type: "whenever", Unit: UnitDay, Value: 1},
		{},
	} {
		_, err := Encode(d)
		assert.Error(t, err, "descriptor %+v", d)
	}
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"immediate":     "Immediately",
		"after_day_2":   "2 days after event",
		"after_day_1":   "1 day after event",
		"before_day_2":  "2 days before event",
		"after_hour_1":  "1 hour after event",
		"before_hour_1": "1 hour before event",
	}
	for code, want := range cases {
		d, err := Decode(code)
		require.NoError(t, err)
		assert.Equal(t, want, Label(d))
	}
}

func TestLabel_InvalidDescriptor(t *testing.T) {
	assert.Equal(t, "Unknown", Label(Descriptor{Type: "later"}))
}

func TestDescriptorJSON_ObjectShape(t *testing.T) {
	var d Descriptor
	require.NoError(t, json.Unmarshal([]byte(`{"type":"after","unit":"day","value":3}`), &d))
	assert.Equal(t, Descriptor{Type: TypeAfter, Unit: UnitDay, Value: 3}, d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"after","unit":"day","value":3}`, string(out))
}

func TestDescriptorJSON_LegacyCodeString(t *testing.T) {
	var d Descriptor
	require.NoError(t, json.Unmarshal([]byte(`"before_day_1"`), &d))
	assert.Equal(t, Descriptor{Type: TypeBefore, Unit: UnitDay, Value: 1}, d)
}

func TestDescriptorJSON_RejectsInconsistentObject(t *testing.T) {
	var d Descriptor
	err := json.Unmarshal([]byte(`{"type":"immediate","unit":"day","value":2}`), &d)
	assert.Error(t, err)
}

func TestMenu_LabelsAndOrder(t *testing.T) {
	menu := Menu()
	require.Len(t, menu, 9)
	assert.Equal(t, "immediate", menu[0].Code)
	assert.Equal(t, "Immediately", menu[0].Label)
	assert.Equal(t, "after_day_2", menu[2].Code)
	assert.Equal(t, "2 days after event", menu[2].Label)
}
