package timing

import (
	"encoding/json"
	"fmt"
)

// Type says when a trigger fires relative to its event.
type Type string

// Unit is the time unit a non-immediate descriptor counts in.
type Unit string

const (
	TypeImmediate Type = "immediate"
	TypeAfter     Type = "after"
	TypeBefore    Type = "before"

	UnitNone Unit = "none"
	UnitHour Unit = "hour"
	UnitDay  Unit = "day"
)

// Descriptor is the structured form of a trigger timing rule.
// Invariant: immediate carries no unit and no value; after/before carry
// both a non-none unit and a positive value.
type Descriptor struct {
	Type  Type `json:"type"`
	Unit  Unit `json:"unit"`
	Value int  `json:"value"`
}

// Immediate returns the canonical immediate descriptor.
func Immediate() Descriptor {
	return Descriptor{Type: TypeImmediate, Unit: UnitNone, Value: 0}
}

// Validate checks the type/unit/value triple for self-consistency.
func (d Descriptor) Validate() error {
	switch d.Type {
	case TypeImmediate:
		if d.Unit != UnitNone || d.Value != 0 {
			return fmt.Errorf("immediate timing must not carry a unit or value: %w", errInconsistent)
		}
		return nil
	case TypeAfter, TypeBefore:
		if d.Unit != UnitHour && d.Unit != UnitDay {
			return fmt.Errorf("timing type %q requires unit hour or day: %w", d.Type, errInconsistent)
		}
		if d.Value <= 0 {
			return fmt.Errorf("timing type %q requires a positive value: %w", d.Type, errInconsistent)
		}
		return nil
	default:
		return fmt.Errorf("unknown timing type %q: %w", d.Type, errInconsistent)
	}
}

// IsZero reports whether d is the uninitialised descriptor (distinct from
// Immediate, whose Type is set).
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// UnmarshalJSON accepts both wire shapes: the structured
// {"type","unit","value"} object and the legacy flat code string
// (e.g. "after_day_2") that older portal clients persisted.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return err
		}
		parsed, err := Decode(code)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	type plain Descriptor
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Descriptor(p)
	return d.Validate()
}
