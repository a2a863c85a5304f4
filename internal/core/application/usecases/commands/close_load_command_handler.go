package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// CloseLoadCommandHandler handles the business logic for closing a
// delivered load. Capacity was already released at delivery; closing only
// finalizes the record.
type CloseLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCloseLoadCommandHandler creates a handler for load closing operations.
func NewCloseLoadCommandHandler(uowFactory LoadUoWFactory) CloseLoadCommandHandler {
	return CloseLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close command: authorizes the caller as the load's
// owner, applies the transition in memory, and persists it conditionally on
// the Delivered status.
func (h *CloseLoadCommandHandler) Handle(ctx context.Context, cmd CloseLoadCommand) error {
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

	if !aggregate.CreatedBy().IsEqual(cmd.BusinessID()) {
		return errs.NewNotAuthorizedError(cmd.BusinessID().String(), "close load")
	}

	if err = aggregate.Close(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.LoadRepository().Transition(ctx, aggregate, load.StatusDelivered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
