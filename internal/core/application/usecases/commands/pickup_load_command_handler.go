package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// PickupLoadCommandHandler handles the business logic for marking a load as
// picked up. Only the assigned hauler may do this; the load records the
// pickup timestamp alongside the status change.
type PickupLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewPickupLoadCommandHandler creates a handler for pickup operations.
func NewPickupLoadCommandHandler(uowFactory LoadUoWFactory) PickupLoadCommandHandler {
	return PickupLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command: authorizes the caller as the
// assigned hauler, applies the transition in memory, and persists it
// conditionally on the Assigned status.
func (h *PickupLoadCommandHandler) Handle(ctx context.Context, cmd PickupLoadCommand) error {
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

	aggregate, err := uow.LoadRepository().Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if assignee := aggregate.AssignedTo(); assignee == nil || !assignee.IsEqual(cmd.HaulerID()) {
		return errs.NewNotAuthorizedError(cmd.HaulerID().String(), "pick up load")
	}

	if err = aggregate.PickUp(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.LoadRepository().Transition(ctx, aggregate, load.StatusAssigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
