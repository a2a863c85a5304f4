package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
// It implements a state machine with role-gated transitions so loads follow
// the freight workflow:
//
//	Posted ──> Matched ──> Assigned ──> InTransit ──> Delivered ──> Closed
//	   │          │
//	   └──────────┴──> Cancelled
//
// Closed and Cancelled are terminal. The table of permitted edges lives in
// transition.go; Status itself only knows its identity, wire form, and
// whether it is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPosted is the initial status: the load is published and
	// claimable by any hauler.
	StatusPosted

	// StatusMatched means a hauler has claimed the load and awaits the
	// business's confirmation.
	StatusMatched

	// StatusAssigned means the business confirmed the claiming hauler.
	// Capacity is reserved at this point.
	StatusAssigned

	// StatusInTransit means the assigned hauler picked the cargo up.
	StatusInTransit

	// StatusDelivered means the hauler dropped the cargo off. Capacity is
	// released at this point.
	StatusDelivered

	// StatusClosed is the terminal success state, set by the business.
	StatusClosed

	// StatusCancelled is the terminal abort state, reachable before the
	// load is assigned.
	StatusCancelled
)

// getStatusStrings returns the wire representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPosted:    "POSTED",
		StatusMatched:   "MATCHED",
		StatusAssigned:  "ASSIGNED",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusClosed:    "CLOSED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Used when reconstructing loads from persistence or request parameters.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < StatusPosted || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// String returns the wire representation of the status ("POSTED",
// "IN_TRANSIT", ...). Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
