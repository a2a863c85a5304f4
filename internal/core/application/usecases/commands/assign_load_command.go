package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrAssignLoadCommandIsNotConstructed is returned when the command was not
// created through NewAssignLoadCommand.
var ErrAssignLoadCommandIsNotConstructed = errors.New(
	"AssignLoadCommand must be created via NewAssignLoadCommand constructor",
)

// AssignLoadCommand represents the owning business's confirmation of the
// hauler that claimed the load. Confirmation commits the capacity
// reservation on the hauler's ledger.
type AssignLoadCommand struct { //nolint:recvcheck //using for validation
	loadID     kernel.UUID
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignLoadCommand creates a command to confirm a claimed load.
func NewAssignLoadCommand(loadID, businessID kernel.UUID) (AssignLoadCommand, error) {
	command := AssignLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setBusinessID(businessID),
	); err != nil {
		return AssignLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignLoadCommand) Validate() error {
	return c.guard.Validate(ErrAssignLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c AssignLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// BusinessID returns the confirming business actor's identifier.
func (c AssignLoadCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c *AssignLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}

	c.loadID = loadID
	return nil
}

func (c *AssignLoadCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessID", err)
	}

	c.businessID = businessID
	return nil
}
