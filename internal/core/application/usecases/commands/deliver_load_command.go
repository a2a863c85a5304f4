package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrDeliverLoadCommandIsNotConstructed is returned when the command was not
// created through NewDeliverLoadCommand.
var ErrDeliverLoadCommandIsNotConstructed = errors.New(
	"DeliverLoadCommand must be created via NewDeliverLoadCommand constructor",
)

// DeliverLoadCommand represents the assigned hauler's report that the cargo
// has been dropped off. Delivery releases the load's weight back to the
// hauler's capacity ledger.
type DeliverLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	haulerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverLoadCommand creates a command to mark a load as delivered.
func NewDeliverLoadCommand(loadID, haulerID kernel.UUID) (DeliverLoadCommand, error) {
	command := DeliverLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setHaulerID(haulerID),
	); err != nil {
		return DeliverLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeliverLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c DeliverLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// HaulerID returns the reporting hauler's identifier.
func (c DeliverLoadCommand) HaulerID() kernel.UUID {
	return c.haulerID
}

func (c *DeliverLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}

	c.loadID = loadID
	return nil
}

func (c *DeliverLoadCommand) setHaulerID(haulerID kernel.UUID) error {
	if err := haulerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	c.haulerID = haulerID
	return nil
}
