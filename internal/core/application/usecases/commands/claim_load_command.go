package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrClaimLoadCommandIsNotConstructed is returned when the command was not
// created through NewClaimLoadCommand.
var ErrClaimLoadCommandIsNotConstructed = errors.New(
	"ClaimLoadCommand must be created via NewClaimLoadCommand constructor",
)

// ClaimLoadCommand represents a hauler's request to claim a posted load.
// Claiming is provisional: the load moves to Matched and awaits the owning
// business's confirmation.
type ClaimLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	haulerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimLoadCommand creates a command for a hauler to claim a load.
func NewClaimLoadCommand(loadID, haulerID kernel.UUID) (ClaimLoadCommand, error) {
	command := ClaimLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setHaulerID(haulerID),
	); err != nil {
		return ClaimLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimLoadCommand) Validate() error {
	return c.guard.Validate(ErrClaimLoadCommandIsNotConstructed)
}

// LoadID returns the target load's identifier.
func (c ClaimLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// HaulerID returns the claiming hauler's identifier.
func (c ClaimLoadCommand) HaulerID() kernel.UUID {
	return c.haulerID
}

func (c *ClaimLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}

	c.loadID = loadID
	return nil
}

func (c *ClaimLoadCommand) setHaulerID(haulerID kernel.UUID) error {
	if err := haulerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	c.haulerID = haulerID
	return nil
}
