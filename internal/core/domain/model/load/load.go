package load

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for load construction and mutation.
var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not
	// created through NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")

	// ErrHistoryIsCorrupted is returned when a restored history log is
	// empty or its last entry disagrees with the load's status.
	ErrHistoryIsCorrupted = errors.New("history must be non-empty and end with the current status")

	// ErrLoadIsNotAssigned is returned when a hauler-side transition is
	// attempted on a load with no assigned hauler.
	ErrLoadIsNotAssigned = errors.New("load has no assigned hauler")
)

// HistoryEntry is one record in a load's append-only audit trail.
// Entries are immutable; the log as a whole reflects the accepted commit
// order of transitions for the load.
type HistoryEntry struct {
	status    Status
	actorID   kernel.UUID
	timestamp time.Time
}

// NewHistoryEntry creates a validated history entry.
func NewHistoryEntry(status Status, actorID kernel.UUID, timestamp time.Time) (HistoryEntry, error) {
	if err := errors.Join(status.Validate(), actorID.Validate()); err != nil {
		return HistoryEntry{}, err
	}
	if timestamp.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("timestamp")
	}

	return HistoryEntry{status: status, actorID: actorID, timestamp: timestamp}, nil
}

// Status returns the status recorded by this entry.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ActorID returns the actor that caused the transition.
func (h HistoryEntry) ActorID() kernel.UUID {
	return h.actorID
}

// Timestamp returns when the transition was recorded.
func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}

// Details groups the descriptive attributes of a load. It is a plain
// parameter object; validation happens in the Load constructors.
type Details struct {
	Origin              string
	Destination         string
	OriginPoint         *kernel.GeoPoint
	DestinationPoint    *kernel.GeoPoint
	CargoType           string
	Weight              float64
	Price               float64
	VehicleTypeRequired string
	PickupDate          time.Time
	Mode                Mode
}

// Load is the aggregate root for a shipment offer. It is the single source
// of truth for the shipment's lifecycle state.
//
// Invariants:
//   - weight is positive
//   - status is always one of the defined lifecycle values
//   - history is non-empty and its last entry's status equals the current
//     status; every status except Posted is reachable only via a recorded
//     transition
//   - createdBy is immutable after creation; assignedTo is set at claim and
//     cleared only by cancellation before assignment
//
// A Load is mutated in memory through its lifecycle methods (Claim, Assign,
// Cancel, PickUp, Deliver, Close), each of which consults the transition
// table and appends a history entry. Persistence adapters enforce the same
// transitions authoritatively with conditional writes; the in-memory methods
// are the fail-fast pre-check and the unit-test surface.
type Load struct {
	id          kernel.UUID
	createdBy   kernel.UUID
	assignedTo  *kernel.UUID
	details     Details
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	status      Status
	history     []HistoryEntry

	guard guard.ConstructorGuard
}

// NewLoad creates a freshly posted load owned by the business actor
// createdBy. The load starts in StatusPosted with a single history entry
// recording the posting.
//
// Validation failures from all fields are aggregated into one error.
func NewLoad(id, createdBy kernel.UUID, details Details, now time.Time) (*Load, error) {
	l := &Load{
		status: StatusPosted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setCreatedBy(createdBy),
		l.setDetails(details),
	); err != nil {
		return nil, err
	}

	entry, err := NewHistoryEntry(StatusPosted, createdBy, now)
	if err != nil {
		return nil, err
	}
	l.history = []HistoryEntry{entry}

	return l, nil
}

// RestoreLoad reconstructs a Load aggregate from persistent storage,
// including its assignment, timestamps, status, and full history log.
// Unlike NewLoad it accepts any valid lifecycle status, but it still
// enforces the history invariant: the log must be non-empty and end with
// the restored status.
func RestoreLoad(
	id, createdBy kernel.UUID,
	assignedTo *kernel.UUID,
	details Details,
	status Status,
	pickedUpAt, deliveredAt *time.Time,
	history []HistoryEntry,
) (*Load, error) {
	l := &Load{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setCreatedBy(createdBy),
		l.setDetails(details),
		l.setAssignedTo(assignedTo),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 || history[len(history)-1].Status() != status {
		return nil, ErrHistoryIsCorrupted
	}
	l.history = history
	l.pickedUpAt = pickedUpAt
	l.deliveredAt = deliveredAt

	return l, nil
}

// Validate ensures the Load was created through a constructor.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares two loads by identity.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// CreatedBy returns the owning business actor. Immutable after creation.
func (l *Load) CreatedBy() kernel.UUID {
	return l.createdBy
}

// AssignedTo returns the claiming hauler's ID, or nil before any claim.
func (l *Load) AssignedTo() *kernel.UUID {
	return l.assignedTo
}

// Details returns the load's descriptive attributes.
func (l *Load) Details() Details {
	return l.details
}

// Weight returns the cargo weight. Always positive for valid loads.
func (l *Load) Weight() float64 {
	return l.details.Weight
}

// Mode returns the load's vehicle occupancy mode.
func (l *Load) Mode() Mode {
	return l.details.Mode
}

// Status returns the current lifecycle status.
func (l *Load) Status() Status {
	return l.status
}

// PickedUpAt returns when the cargo was picked up, or nil.
func (l *Load) PickedUpAt() *time.Time {
	return l.pickedUpAt
}

// DeliveredAt returns when the cargo was delivered, or nil.
func (l *Load) DeliveredAt() *time.Time {
	return l.deliveredAt
}

// History returns a copy of the append-only audit trail, oldest first.
func (l *Load) History() []HistoryEntry {
	out := make([]HistoryEntry, len(l.history))
	copy(out, l.history)
	return out
}

// Claim tentatively assigns the load to a hauler: Posted -> Matched.
// The assignment is provisional until the business confirms it via Assign.
// Under concurrent claims the repository's conditional write decides the
// winner; this method only enforces the state machine on the in-memory copy.
func (l *Load) Claim(haulerID kernel.UUID, at time.Time) error {
	if err := haulerID.Validate(); err != nil {
		return err
	}

	if err := l.applyTransition(StatusMatched, kernel.RoleTrucker, haulerID, at); err != nil {
		return err
	}

	l.assignedTo = &haulerID
	return nil
}

// Assign confirms the claiming hauler: Matched -> Assigned. Only the owning
// business performs this; capacity is reserved at this point.
func (l *Load) Assign(at time.Time) error {
	if l.assignedTo == nil {
		return ErrLoadIsNotAssigned
	}
	return l.applyTransition(StatusAssigned, kernel.RoleBusiness, l.createdBy, at)
}

// Cancel aborts the load: Posted or Matched -> Cancelled. Any provisional
// assignment is cleared; no capacity was reserved before Assigned, so there
// is nothing to release.
func (l *Load) Cancel(at time.Time) error {
	if err := l.applyTransition(StatusCancelled, kernel.RoleBusiness, l.createdBy, at); err != nil {
		return err
	}

	l.assignedTo = nil
	return nil
}

// PickUp marks the cargo as collected: Assigned -> InTransit. Only the
// assigned hauler performs this.
func (l *Load) PickUp(at time.Time) error {
	if l.assignedTo == nil {
		return ErrLoadIsNotAssigned
	}

	if err := l.applyTransition(StatusInTransit, kernel.RoleTrucker, *l.assignedTo, at); err != nil {
		return err
	}

	l.pickedUpAt = &at
	return nil
}

// Deliver marks the cargo as dropped off: InTransit -> Delivered. Only the
// assigned hauler performs this; the hauler's capacity is released at this
// point.
func (l *Load) Deliver(at time.Time) error {
	if l.assignedTo == nil {
		return ErrLoadIsNotAssigned
	}

	if err := l.applyTransition(StatusDelivered, kernel.RoleTrucker, *l.assignedTo, at); err != nil {
		return err
	}

	l.deliveredAt = &at
	return nil
}

// Close finalizes the load: Delivered -> Closed. Terminal.
func (l *Load) Close(at time.Time) error {
	return l.applyTransition(StatusClosed, kernel.RoleBusiness, l.createdBy, at)
}

// applyTransition validates the edge, advances the status, and appends a
// history entry. All lifecycle methods funnel through here so the history
// invariant cannot be bypassed.
func (l *Load) applyTransition(next Status, role kernel.Role, actor kernel.UUID, at time.Time) error {
	if err := ValidateTransition(l.status, next, role); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(next, actor, at)
	if err != nil {
		return err
	}

	l.status = next
	l.history = append(l.history, entry)
	return nil
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	l.createdBy = createdBy
	return nil
}

func (l *Load) setAssignedTo(assignedTo *kernel.UUID) error {
	if assignedTo == nil {
		return nil
	}
	if err := assignedTo.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("assignedTo", err)
	}
	l.assignedTo = assignedTo
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *Load) setDetails(details Details) error {
	var errList []error

	if details.Origin == "" {
		errList = append(errList, errs.NewValueIsRequiredError("origin"))
	}
	if details.Destination == "" {
		errList = append(errList, errs.NewValueIsRequiredError("destination"))
	}
	if details.CargoType == "" {
		errList = append(errList, errs.NewValueIsRequiredError("cargoType"))
	}
	if details.VehicleTypeRequired == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vehicleTypeRequired"))
	}
	if details.Weight <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", details.Weight)))
	}
	if details.Price < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%v is negative", details.Price)))
	}
	if details.PickupDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("pickupDate"))
	}
	if err := details.Mode.Validate(); err != nil {
		errList = append(errList, err)
	}
	if details.OriginPoint != nil {
		if err := details.OriginPoint.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if details.DestinationPoint != nil {
		if err := details.DestinationPoint.Validate(); err != nil {
			errList = append(errList, err)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	l.details = details
	return nil
}
