package timing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCode is returned when a flat timing code does not match the
// grammar. Codes come from a fixed menu, so hitting this at runtime means a
// caller bug or corrupted stored data, not user input.
var ErrInvalidCode = errors.New("invalid timing code")

var errInconsistent = errors.New("inconsistent timing descriptor")

const codeImmediate = "immediate"

// Decode parses a flat timing code ("immediate" or "<type>_<unit>_<n>")
// into a Descriptor. The numeric part accepts any positive base-10 integer;
// the UI menu only offers small values but the grammar is not bounded.
func Decode(code string) (Descriptor, error) {
	if code == codeImmediate {
		return Immediate(), nil
	}

	parts := strings.Split(code, "_")
	if len(parts) != 3 {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	var typ Type
	switch parts[0] {
	case string(TypeAfter):
		typ = TypeAfter
	case string(TypeBefore):
		typ = TypeBefore
	default:
		return Descriptor{}, fmt.Errorf("%w: unknown type in %q", ErrInvalidCode, code)
	}

	var unit Unit
	switch parts[1] {
	case string(UnitDay):
		unit = UnitDay
	case string(UnitHour):
		unit = UnitHour
	default:
		return Descriptor{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidCode, code)
	}

	n, err := strconv.Atoi(parts[2])
	if err != nil || n <= 0 {
		return Descriptor{}, fmt.Errorf("%w: bad count in %q", ErrInvalidCode, code)
	}

	return Descriptor{Type: typ, Unit: unit, Value: n}, nil
}

// Encode is the inverse of Decode. It rejects descriptors that violate the
// type/unit/value invariant rather than emitting an unparsable code.
func Encode(d Descriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	if d.Type == TypeImmediate {
		return codeImmediate, nil
	}
	return fmt.Sprintf("%s_%s_%d", d.Type, d.Unit, d.Value), nil
}

// Label renders the canonical human-readable phrase for a descriptor,
// e.g. "Immediately", "2 days after event", "1 hour before event".
// Invalid descriptors render as "Unknown" so a corrupt record never
// panics a list view.
func Label(d Descriptor) string {
	if d.Validate() != nil {
		return "Unknown"
	}
	if d.Type == TypeImmediate {
		return "Immediately"
	}
	unit := string(d.Unit)
	if d.Value != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s %s event", d.Value, unit, d.Type)
}

// Option pairs a menu code with its display label.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// menuCodes is the closed set of codes the portal UI offers.
var menuCodes = []string{
	"immediate",
	"after_day_1",
	"after_day_2",
	"after_day_3",
	"before_day_1",
	"before_day_2",
	"after_hour_1",
	"after_hour_2",
	"before_hour_1",
}

// Menu returns the fixed timing menu in display order.
func Menu() []Option {
	opts := make([]Option, 0, len(menuCodes))
	for _, code := range menuCodes {
		d, err := Decode(code)
		if err != nil {
			// menuCodes is a literal list of valid codes
			panic(err)
		}
		opts = append(opts, Option{Code: code, Label: Label(d)})
	}
	return opts
}
