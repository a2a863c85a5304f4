package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// DeliverLoadCommandHandler handles the business logic for marking a load
// as delivered.
//
// Delivery is the second half of the capacity pairing started at
// assignment: the hauler's ledger is credited by the load's weight inside
// the same transaction as the conditional status write. A lost race on the
// load rolls the credit back, so the weight is released exactly once.
type DeliverLoadCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeliverLoadCommandHandler creates a handler for delivery operations.
func NewDeliverLoadCommandHandler(uowFactory UoWFactory) DeliverLoadCommandHandler {
	return DeliverLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command: authorizes the caller as the
// assigned hauler, applies the transition in memory, credits the capacity
// ledger, and persists the transition conditionally on the InTransit status.
func (h *DeliverLoadCommandHandler) Handle(ctx context.Context, cmd DeliverLoadCommand) error {
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
		return errs.NewNotAuthorizedError(cmd.HaulerID().String(), "deliver load")
	}

	if err = aggregate.Deliver(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.HaulerRepository().ReleaseCapacity(ctx, cmd.HaulerID(), aggregate.Weight()); err != nil {
		return err
	}

	if err = uow.LoadRepository().Transition(ctx, aggregate, load.StatusInTransit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
