package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
)

// AssignLoadCommandHandler handles the business logic for confirming a
// claimed load.
//
// Assignment is the moment capacity is committed: the hauler's ledger is
// debited by the load's weight inside the same transaction as the
// conditional status write, so a lost race on the load rolls the debit
// back. The ledger debit itself is a conditional UPDATE, re-checking the
// capacity and FULL-mode occupancy rules at write time.
type AssignLoadCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignLoadCommandHandler creates a handler for load assignment operations.
func NewAssignLoadCommandHandler(uowFactory UoWFactory) AssignLoadCommandHandler {
	return AssignLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assign command: authorizes the caller as the load's
// owner, applies the transition in memory, debits the hauler's capacity
// ledger, and persists the transition conditionally on the Matched status.
func (h *AssignLoadCommandHandler) Handle(ctx context.Context, cmd AssignLoadCommand) error {
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
		return errs.NewNotAuthorizedError(cmd.BusinessID().String(), "assign load")
	}

	if err = aggregate.Assign(time.Now().UTC()); err != nil {
		return err
	}

	haulerID := aggregate.AssignedTo()
	if err = uow.HaulerRepository().ReserveCapacity(ctx, *haulerID, aggregate.Weight(), aggregate.Mode()); err != nil {
		return err
	}

	if err = uow.LoadRepository().Transition(ctx, aggregate, load.StatusMatched); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
