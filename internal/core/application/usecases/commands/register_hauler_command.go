package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrRegisterHaulerCommandIsNotConstructed is returned when the command was
// not created through NewRegisterHaulerCommand.
var ErrRegisterHaulerCommandIsNotConstructed = errors.New(
	"RegisterHaulerCommand must be created via NewRegisterHaulerCommand constructor",
)

// RegisterHaulerCommand represents a trucker's request to register a
// vehicle profile, which creates the capacity ledger the matching engine
// works against.
type RegisterHaulerCommand struct { //nolint:recvcheck //using for validation
	haulerID    kernel.UUID
	vehicleType string
	capacity    float64
	location    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterHaulerCommand creates a command to register a hauler profile.
func NewRegisterHaulerCommand(
	haulerID kernel.UUID,
	vehicleType string,
	capacity float64,
	location kernel.GeoPoint,
) (RegisterHaulerCommand, error) {
	command := RegisterHaulerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHaulerID(haulerID),
		command.setVehicleType(vehicleType),
		command.setCapacity(capacity),
		command.setLocation(location),
	); err != nil {
		return RegisterHaulerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterHaulerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHaulerCommandIsNotConstructed)
}

// HaulerID returns the registering hauler's identifier.
func (c RegisterHaulerCommand) HaulerID() kernel.UUID {
	return c.haulerID
}

// VehicleType returns the vehicle type descriptor.
func (c RegisterHaulerCommand) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the vehicle's total cargo capacity.
func (c RegisterHaulerCommand) Capacity() float64 {
	return c.capacity
}

// Location returns the hauler's initial position.
func (c RegisterHaulerCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *RegisterHaulerCommand) setHaulerID(haulerID kernel.UUID) error {
	if err := haulerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	c.haulerID = haulerID
	return nil
}

func (c *RegisterHaulerCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *RegisterHaulerCommand) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%v is not greater than 0", capacity))
	}

	c.capacity = capacity
	return nil
}

func (c *RegisterHaulerCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
