package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrPostLoadCommandIsNotConstructed is returned when the command was not
// created through NewPostLoadCommand.
var ErrPostLoadCommandIsNotConstructed = errors.New(
	"PostLoadCommand must be created via NewPostLoadCommand constructor",
)

// PostLoadCommand represents a business actor's request to publish a new
// load on the board.
//
// Example:
//
//	loadID := kernel.NewUUID()
//	cmd, err := NewPostLoadCommand(loadID, businessID, details)
//	if err != nil {
//	    return fmt.Errorf("invalid load data: %w", err)
//	}
//
//	handler := NewPostLoadCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to post load: %w", err)
//	}
type PostLoadCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	createdBy kernel.UUID
	details   load.Details

	guard guard.ConstructorGuard
}

// NewPostLoadCommand creates a command to publish a new load. Validates the
// identifiers and the load details; all failures are aggregated into one
// error.
func NewPostLoadCommand(loadID, createdBy kernel.UUID, details load.Details) (PostLoadCommand, error) {
	command := PostLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLoadID(loadID),
		command.setCreatedBy(createdBy),
		command.setDetails(details),
	); err != nil {
		return PostLoadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PostLoadCommand) Validate() error {
	return c.guard.Validate(ErrPostLoadCommandIsNotConstructed)
}

// LoadID returns the unique identifier for the new load.
func (c PostLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// CreatedBy returns the posting business actor's identifier.
func (c PostLoadCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

// Details returns the load's descriptive attributes.
func (c PostLoadCommand) Details() load.Details {
	return c.details
}

func (c *PostLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *PostLoadCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}

	c.createdBy = createdBy
	return nil
}

func (c *PostLoadCommand) setDetails(details load.Details) error {
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
	if details.PickupDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("pickupDate"))
	}
	if err := details.Mode.Validate(); err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.details = details
	return nil
}
