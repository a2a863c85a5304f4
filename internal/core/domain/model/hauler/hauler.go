package hauler

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for hauler operations.
var (
	// ErrHaulerIsNotConstructed is returned when using an improperly
	// initialized Hauler.
	ErrHaulerIsNotConstructed = errors.New("Hauler must be created via NewHauler or RestoreHauler constructor")

	// ErrVehicleTypeIsRequired is returned when creating a hauler without
	// a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")

	// ErrInsufficientCapacity indicates the hauler's remaining capacity is
	// smaller than the requested weight.
	ErrInsufficientCapacity = errors.New("insufficient capacity")

	// ErrVehicleNotEmpty indicates a FULL-mode load was offered to a
	// vehicle that already carries cargo.
	ErrVehicleNotEmpty = errors.New("vehicle is not empty")
)

// InsufficientCapacityError reports a reserve attempt exceeding the
// hauler's available capacity.
type InsufficientCapacityError struct {
	Available float64
	Requested float64
}

// NewInsufficientCapacityError creates an InsufficientCapacityError.
func NewInsufficientCapacityError(available, requested float64) *InsufficientCapacityError {
	return &InsufficientCapacityError{Available: available, Requested: requested}
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("%s: %v available, %v requested", ErrInsufficientCapacity, e.Available, e.Requested)
}

func (e *InsufficientCapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}

// VehicleNotEmptyError reports a FULL-mode reserve attempt against a
// partially occupied vehicle.
type VehicleNotEmptyError struct {
	Available float64
	Total     float64
}

// NewVehicleNotEmptyError creates a VehicleNotEmptyError.
func NewVehicleNotEmptyError(available, total float64) *VehicleNotEmptyError {
	return &VehicleNotEmptyError{Available: available, Total: total}
}

func (e *VehicleNotEmptyError) Error() string {
	return fmt.Sprintf("%s: %v of %v capacity free", ErrVehicleNotEmpty, e.Available, e.Total)
}

func (e *VehicleNotEmptyError) Unwrap() error {
	return ErrVehicleNotEmpty
}

// Hauler is the aggregate root for a trucker's vehicle profile and capacity
// ledger. It is the single source of truth for the hauler's remaining cargo
// space; loads correlate with it only by hauler ID at transition time.
//
// Invariant: 0 <= availableCapacity <= totalCapacity at all times.
//
// The ledger operations are pure arithmetic:
//   - Reserve debits available capacity when a load is assigned
//   - Release credits it back when the load is delivered, clamped at total
//
// Each must be applied exactly once per lifecycle event; the application
// layer guarantees that by running them inside the same transaction as the
// load's conditional status write.
type Hauler struct {
	id                kernel.UUID
	vehicleType       string
	totalCapacity     float64
	availableCapacity float64
	location          kernel.GeoPoint
	online            bool

	guard guard.ConstructorGuard
}

// NewHauler creates a hauler profile with an empty vehicle: available
// capacity starts equal to total capacity. Location may be the (0,0)
// "unknown" point until the hauler reports a position.
func NewHauler(id kernel.UUID, vehicleType string, capacity float64, location kernel.GeoPoint) (*Hauler, error) {
	h := &Hauler{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		h.setID(id),
		h.setVehicleType(vehicleType),
		h.setCapacity(capacity, capacity),
		h.setLocation(location),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHauler reconstructs a hauler from persistent storage, preserving
// the ledger state at the time of persistence.
func RestoreHauler(
	id kernel.UUID,
	vehicleType string,
	totalCapacity, availableCapacity float64,
	location kernel.GeoPoint,
	online bool,
) (*Hauler, error) {
	h := &Hauler{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		h.setID(id),
		h.setVehicleType(vehicleType),
		h.setCapacity(totalCapacity, availableCapacity),
		h.setLocation(location),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate ensures the Hauler was created through a constructor.
func (h *Hauler) Validate() error {
	if h == nil {
		return ErrHaulerIsNotConstructed
	}
	return h.guard.Validate(ErrHaulerIsNotConstructed)
}

// IsEqual compares two haulers by identity.
func (h *Hauler) IsEqual(other *Hauler) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the hauler's unique identifier.
func (h *Hauler) ID() kernel.UUID {
	return h.id
}

// VehicleType returns the hauler's vehicle type descriptor.
func (h *Hauler) VehicleType() string {
	return h.vehicleType
}

// TotalCapacity returns the vehicle's total cargo capacity.
func (h *Hauler) TotalCapacity() float64 {
	return h.totalCapacity
}

// AvailableCapacity returns the remaining cargo capacity.
func (h *Hauler) AvailableCapacity() float64 {
	return h.availableCapacity
}

// Location returns the hauler's last reported position.
func (h *Hauler) Location() kernel.GeoPoint {
	return h.location
}

// IsOnline reports whether the hauler is accepting work.
func (h *Hauler) IsOnline() bool {
	return h.online
}

// HasFullVehicleFree reports whether the vehicle is completely empty.
// Only an empty vehicle may accept a FULL-mode load.
func (h *Hauler) HasFullVehicleFree() bool {
	return h.availableCapacity == h.totalCapacity
}

// CheckReserve validates a reservation without applying it. Used as the
// fail-fast pre-check at claim time, before any capacity is committed.
//
// Returns:
//   - *VehicleNotEmptyError when a FULL-mode load meets a non-empty vehicle
//   - *InsufficientCapacityError when weight exceeds available capacity
//   - nil when the reservation would succeed
//
// The occupancy rule is checked first: a FULL-mode load against a partially
// loaded vehicle reports the vehicle as occupied even when the weight would
// not fit either.
func (h *Hauler) CheckReserve(weight float64, mode load.Mode) error {
	if err := errors.Join(h.Validate(), mode.Validate()); err != nil {
		return err
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", weight))
	}

	if mode == load.ModeFull && !h.HasFullVehicleFree() {
		return NewVehicleNotEmptyError(h.availableCapacity, h.totalCapacity)
	}
	if h.availableCapacity < weight {
		return NewInsufficientCapacityError(h.availableCapacity, weight)
	}

	return nil
}

// Reserve debits the ledger by weight. Applied exactly once, when the load
// is assigned to this hauler.
func (h *Hauler) Reserve(weight float64, mode load.Mode) error {
	if err := h.CheckReserve(weight, mode); err != nil {
		return err
	}

	h.availableCapacity -= weight
	return nil
}

// Release credits the ledger by weight, clamped so available capacity never
// exceeds total. Applied exactly once, when the load is delivered. The
// clamp should not trigger under correct use; it keeps the invariant from
// being violated by replayed or reconciled events.
func (h *Hauler) Release(weight float64) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", weight))
	}

	h.availableCapacity += weight
	if h.availableCapacity > h.totalCapacity {
		h.availableCapacity = h.totalCapacity
	}

	return nil
}

// Reconcile aligns the ledger with a reservation total recomputed from the
// loads currently holding capacity on this vehicle. Reports whether the
// ledger had drifted. A recomputed total above the vehicle's capacity clamps
// available to zero instead of failing; the loads are already committed.
func (h *Hauler) Reconcile(reserved float64) (bool, error) {
	if err := h.Validate(); err != nil {
		return false, err
	}
	if reserved < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"reserved", fmt.Errorf("%v is negative", reserved))
	}

	available := h.totalCapacity - reserved
	if available < 0 {
		available = 0
	}
	if available == h.availableCapacity {
		return false, nil
	}

	h.availableCapacity = available
	return true, nil
}

// SetCapacity updates the vehicle's total capacity and resets available
// capacity to the new total, mirroring a profile/vehicle change.
func (h *Hauler) SetCapacity(capacity float64) error {
	return h.setCapacity(capacity, capacity)
}

// MoveTo updates the hauler's reported position.
func (h *Hauler) MoveTo(location kernel.GeoPoint) error {
	return h.setLocation(location)
}

// SetOnline toggles whether the hauler is accepting work.
func (h *Hauler) SetOnline(online bool) {
	h.online = online
}

func (h *Hauler) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hauler) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	h.vehicleType = vehicleType
	return nil
}

func (h *Hauler) setCapacity(total, available float64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalCapacity", fmt.Errorf("%v is not greater than 0", total))
	}
	if available < 0 || available > total {
		return errs.NewValueIsOutOfRangeError("availableCapacity", available, 0, total)
	}

	h.totalCapacity = total
	h.availableCapacity = available
	return nil
}

func (h *Hauler) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	h.location = location
	return nil
}
