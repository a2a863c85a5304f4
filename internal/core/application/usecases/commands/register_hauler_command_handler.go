package commands

import (
	"context"

	"freight/internal/core/domain/model/hauler"
)

// RegisterHaulerCommandHandler handles the business logic for registering a
// hauler profile. The profile starts with an empty vehicle: available
// capacity equals total capacity.
type RegisterHaulerCommandHandler struct {
	uowFactory HaulerUoWFactory
}

// NewRegisterHaulerCommandHandler creates a handler for hauler registration.
func NewRegisterHaulerCommandHandler(uowFactory HaulerUoWFactory) RegisterHaulerCommandHandler {
	return RegisterHaulerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the register hauler command.
func (h *RegisterHaulerCommandHandler) Handle(ctx context.Context, cmd RegisterHaulerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := hauler.NewHauler(cmd.HaulerID(), cmd.VehicleType(), cmd.Capacity(), cmd.Location())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HaulerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
