package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrPickupLoadCommandIsNotConstructed is returned when the command was not
// created through NewPickupLoadCommand.
var ErrPickupLoadCommandIsNotConstructed = errors.New(
	"PickupLoadCommand must be created via NewPickupLoadCommand constructor",
)

// PickupLoadCommand represents the assigned hauler's report that the cargo
// has been collected and the load is in transit.
type PickupLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	haulerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupLoadCommand creates a command to mark a load as picked up.
func NewPickupLoadCommand(loadID, haulerID kernel.UUID) (PickupLoadCommand, error) {
	command := PickupLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setHaulerID(haulerID),
	); err != nil {
		return PickupLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupLoadCommand) Validate() error {
	return c.guard.Validate(ErrPickupLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c PickupLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// HaulerID returns the reporting hauler's identifier.
func (c PickupLoadCommand) HaulerID() kernel.UUID {
	return c.haulerID
}

func (c *PickupLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}

	c.loadID = loadID
	return nil
}

func (c *PickupLoadCommand) setHaulerID(haulerID kernel.UUID) error {
	if err := haulerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	c.haulerID = haulerID
	return nil
}
