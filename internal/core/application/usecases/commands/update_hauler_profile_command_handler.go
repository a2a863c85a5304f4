package commands

import (
	"context"
)

// UpdateHaulerProfileCommandHandler handles the business logic for hauler
// profile updates: vehicle capacity, reported position, and availability.
type UpdateHaulerProfileCommandHandler struct {
	uowFactory HaulerUoWFactory
}

// NewUpdateHaulerProfileCommandHandler creates a handler for profile updates.
func NewUpdateHaulerProfileCommandHandler(uowFactory HaulerUoWFactory) UpdateHaulerProfileCommandHandler {
	return UpdateHaulerProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command, applying only the fields the
// command carries.
func (h *UpdateHaulerProfileCommandHandler) Handle(ctx context.Context, cmd UpdateHaulerProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.HaulerRepository().Get(ctx, cmd.HaulerID())
	if err != nil {
		return err
	}

	if capacity := cmd.Capacity(); capacity != nil {
		if err = aggregate.SetCapacity(*capacity); err != nil {
			return err
		}
	}
	if location := cmd.Location(); location != nil {
		if err = aggregate.MoveTo(*location); err != nil {
			return err
		}
	}
	if online := cmd.Online(); online != nil {
		aggregate.SetOnline(*online)
	}

	if err = uow.HaulerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
