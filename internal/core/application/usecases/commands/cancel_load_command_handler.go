package commands

import (
	"context"
	"time"

	"freight/internal/pkg/errs"
)

// CancelLoadCommandHandler handles the business logic for cancelling a load.
//
// Cancellation races against claims: a hauler may claim the load between
// the read and the write. The conditional write is keyed on the status the
// load had when read, so a concurrent claim surfaces as a
// StatusConflictError instead of silently cancelling a matched load.
type CancelLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCancelLoadCommandHandler creates a handler for load cancellation operations.
func NewCancelLoadCommandHandler(uowFactory LoadUoWFactory) CancelLoadCommandHandler {
	return CancelLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command: authorizes the caller as the load's
// owner, applies the transition in memory, and persists it conditionally on
// the status observed at read time.
func (h *CancelLoadCommandHandler) Handle(ctx context.Context, cmd CancelLoadCommand) error {
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
		return errs.NewNotAuthorizedError(cmd.BusinessID().String(), "cancel load")
	}

	expected := aggregate.Status()
	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.LoadRepository().Transition(ctx, aggregate, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
