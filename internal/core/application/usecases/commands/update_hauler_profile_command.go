package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrUpdateHaulerProfileCommandIsNotConstructed is returned when the command
// was not created through NewUpdateHaulerProfileCommand.
var ErrUpdateHaulerProfileCommandIsNotConstructed = errors.New(
	"UpdateHaulerProfileCommand must be created via NewUpdateHaulerProfileCommand constructor",
)

// UpdateHaulerProfileCommand represents a trucker's profile update. Each
// field is optional; only the provided ones are applied. Updating the
// capacity resets the ledger: available capacity returns to the new total.
type UpdateHaulerProfileCommand struct { //nolint:recvcheck //using for validation
	haulerID kernel.UUID
	capacity *float64
	location *kernel.GeoPoint
	online   *bool

	guard guard.ConstructorGuard
}

// NewUpdateHaulerProfileCommand creates a command to update a hauler
// profile. Nil pointers mean "leave unchanged".
func NewUpdateHaulerProfileCommand(
	haulerID kernel.UUID,
	capacity *float64,
	location *kernel.GeoPoint,
	online *bool,
) (UpdateHaulerProfileCommand, error) {
	command := UpdateHaulerProfileCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHaulerID(haulerID),
		command.setCapacity(capacity),
		command.setLocation(location),
	); err != nil {
		return UpdateHaulerProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateHaulerProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateHaulerProfileCommandIsNotConstructed)
}

// HaulerID returns the hauler's identifier.
func (c UpdateHaulerProfileCommand) HaulerID() kernel.UUID {
	return c.haulerID
}

// Capacity returns the new total capacity, or nil to leave unchanged.
func (c UpdateHaulerProfileCommand) Capacity() *float64 {
	return c.capacity
}

// Location returns the new position, or nil to leave unchanged.
func (c UpdateHaulerProfileCommand) Location() *kernel.GeoPoint {
	return c.location
}

// Online returns the new availability flag, or nil to leave unchanged.
func (c UpdateHaulerProfileCommand) Online() *bool {
	return c.online
}

func (c *UpdateHaulerProfileCommand) setHaulerID(haulerID kernel.UUID) error {
	if err := haulerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	c.haulerID = haulerID
	return nil
}

func (c *UpdateHaulerProfileCommand) setCapacity(capacity *float64) error {
	if capacity == nil {
		return nil
	}
	if *capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%v is not greater than 0", *capacity))
	}

	c.capacity = capacity
	return nil
}

func (c *UpdateHaulerProfileCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
