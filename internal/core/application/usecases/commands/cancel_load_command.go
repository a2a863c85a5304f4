package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrCancelLoadCommandIsNotConstructed is returned when the command was not
// created through NewCancelLoadCommand.
var ErrCancelLoadCommandIsNotConstructed = errors.New(
	"CancelLoadCommand must be created via NewCancelLoadCommand constructor",
)

// CancelLoadCommand represents the owning business's request to withdraw a
// load from the board. Only possible before the load is assigned; no
// capacity has been reserved by then, so there is nothing to release.
type CancelLoadCommand struct { //nolint:recvcheck //using for validation
	loadID     kernel.UUID
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelLoadCommand creates a command to cancel a load.
func NewCancelLoadCommand(loadID, businessID kernel.UUID) (CancelLoadCommand, error) {
	command := CancelLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setBusinessID(businessID),
	); err != nil {
		return CancelLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelLoadCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c CancelLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// BusinessID returns the cancelling business actor's identifier.
func (c CancelLoadCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c *CancelLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}

	c.loadID = loadID
	return nil
}

func (c *CancelLoadCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessID", err)
	}

	c.businessID = businessID
	return nil
}
