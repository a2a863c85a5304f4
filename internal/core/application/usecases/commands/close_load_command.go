package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrCloseLoadCommandIsNotConstructed is returned when the command was not
// created through NewCloseLoadCommand.
var ErrCloseLoadCommandIsNotConstructed = errors.New(
	"CloseLoadCommand must be created via NewCloseLoadCommand constructor",
)

// CloseLoadCommand represents the owning business's final sign-off on a
// delivered load. Closing is terminal.
type CloseLoadCommand struct { //nolint:recvcheck //using for validation
	loadID     kernel.UUID
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseLoadCommand creates a command to close a delivered load.
func NewCloseLoadCommand(loadID, businessID kernel.UUID) (CloseLoadCommand, error) {
	command := CloseLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setBusinessID(businessID),
	); err != nil {
		return CloseLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseLoadCommand) Validate() error {
	return c.guard.Validate(ErrCloseLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c CloseLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// BusinessID returns the closing business actor's identifier.
func (c CloseLoadCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c *CloseLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}

	c.loadID = loadID
	return nil
}

func (c *CloseLoadCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessID", err)
	}

	c.businessID = businessID
	return nil
}
