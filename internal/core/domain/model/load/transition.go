package load

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
)

// Sentinel errors for transition failures, matched with errors.Is.
var (
	// ErrTerminalState indicates the load's current status has no outgoing
	// transitions at all.
	ErrTerminalState = errors.New("load is in a terminal state")

	// ErrRoleNotPermitted indicates the acting role has no permitted
	// transition from the load's current status.
	ErrRoleNotPermitted = errors.New("role is not permitted to update load in this state")

	// ErrInvalidTransition indicates the desired status is not among the
	// role's permitted targets from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStatusConflict indicates the load's stored status no longer
	// matched the expected status at write time: another actor won the
	// race. This is the authoritative concurrency failure; the validator
	// errors above are advisory pre-checks only.
	ErrStatusConflict = errors.New("load status conflict")
)

// TerminalStateError reports an attempted transition out of Closed or
// Cancelled.
type TerminalStateError struct {
	Current Status
}

// NewTerminalStateError creates a TerminalStateError for the given status.
func NewTerminalStateError(current Status) *TerminalStateError {
	return &TerminalStateError{Current: current}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: load is in terminal state %s and cannot be updated",
		ErrTerminalState, e.Current)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// RoleNotPermittedError reports that a role has no edge out of the load's
// current status.
type RoleNotPermittedError struct {
	Current Status
	Role    kernel.Role
}

// NewRoleNotPermittedError creates a RoleNotPermittedError.
func NewRoleNotPermittedError(current Status, role kernel.Role) *RoleNotPermittedError {
	return &RoleNotPermittedError{Current: current, Role: role}
}

func (e *RoleNotPermittedError) Error() string {
	return fmt.Sprintf("%s: role %s may not update load from %s",
		ErrRoleNotPermitted, e.Role, e.Current)
}

func (e *RoleNotPermittedError) Unwrap() error {
	return ErrRoleNotPermitted
}

// InvalidTransitionError reports that the desired status is not reachable
// from the current status for the acting role.
type InvalidTransitionError struct {
	Current Status
	Desired Status
	Role    kernel.Role
}

// NewInvalidTransitionError creates an InvalidTransitionError.
func NewInvalidTransitionError(current, desired Status, role kernel.Role) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Desired: desired, Role: role}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move load from %s to %s as role %s",
		ErrInvalidTransition, e.Current, e.Desired, e.Role)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StatusConflictError carries both sides of a failed conditional write:
// the status the caller expected and the status actually observed on
// re-read. Observing both is the only way a caller can distinguish "someone
// else already transitioned the load" from a stale view of it.
type StatusConflictError struct {
	Expected Status
	Observed Status
}

// NewStatusConflictError creates a StatusConflictError.
func NewStatusConflictError(expected, observed Status) *StatusConflictError {
	return &StatusConflictError{Expected: expected, Observed: observed}
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("%s: expected %s but found %s",
		ErrStatusConflict, e.Expected, e.Observed)
}

func (e *StatusConflictError) Unwrap() error {
	return ErrStatusConflict
}

// transitionTable returns the permitted lifecycle edges per status and role.
// A missing status key means the status is terminal; a missing role key
// means that role may not act on the status at all.
func transitionTable() map[Status]map[kernel.Role][]Status {
	return map[Status]map[kernel.Role][]Status{
		StatusPosted: {
			kernel.RoleTrucker:  {StatusMatched},
			kernel.RoleBusiness: {StatusCancelled},
		},
		StatusMatched: {
			kernel.RoleBusiness: {StatusAssigned, StatusCancelled},
		},
		StatusAssigned: {
			kernel.RoleTrucker: {StatusInTransit},
		},
		StatusInTransit: {
			kernel.RoleTrucker: {StatusDelivered},
		},
		StatusDelivered: {
			kernel.RoleBusiness: {StatusClosed},
		},
	}
}

// ValidateTransition checks whether the acting role may move a load from
// current to desired. It is a pure function over the transition table and
// performs no I/O.
//
// Returns:
//   - *TerminalStateError when current has no outgoing edges
//   - *RoleNotPermittedError when the role has no edge from current
//   - *InvalidTransitionError when desired is not among the role's targets
//   - nil when the transition is permitted
//
// The check is advisory: the authoritative arbiter under concurrency is the
// conditional write performed by the load repository, which yields a
// StatusConflictError when it loses the race.
func ValidateTransition(current, desired Status, role kernel.Role) error {
	edges, ok := transitionTable()[current]
	if !ok {
		return NewTerminalStateError(current)
	}

	targets, ok := edges[role]
	if !ok {
		return NewRoleNotPermittedError(current, role)
	}

	for _, target := range targets {
		if target == desired {
			return nil
		}
	}

	return NewInvalidTransitionError(current, desired, role)
}
