package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Mode describes how a load occupies a hauler's vehicle.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// ModeFull requires a completely empty vehicle: the load takes the
	// whole cargo space regardless of its weight.
	ModeFull

	// ModePartial may share the vehicle with other partial loads.
	ModePartial
)

// ModeFromString parses the wire representation of a mode ("FULL" or
// "PARTIAL").
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "FULL":
		return ModeFull, nil
	case "PARTIAL":
		return ModePartial, nil
	default:
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"mode", fmt.Errorf("%q is not a valid load mode", s))
	}
}

// Validate checks that the Mode is one of the defined values.
func (m Mode) Validate() error {
	if m != ModeFull && m != ModePartial {
		return errs.NewValueIsInvalidErrorWithCause(
			"mode", fmt.Errorf("%d is not a valid load mode", m))
	}
	return nil
}

// String returns the wire representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "FULL"
	case ModePartial:
		return "PARTIAL"
	default:
		return "UNKNOWN"
	}
}
