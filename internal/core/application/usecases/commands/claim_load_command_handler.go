package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/services"
)

// ClaimLoadCommandHandler handles the business logic for claiming a load.
//
// The claim is the contended operation of the lifecycle: any number of
// haulers may race on the same Posted load. The handler runs the matcher's
// pre-checks (claimability, vehicle type, capacity) against in-memory state,
// then lets the repository's conditional write arbitrate. Exactly one
// concurrent claimer wins; the rest receive a StatusConflictError.
//
// No capacity is committed at claim time. The reservation happens when the
// business confirms the hauler via AssignLoadCommand.
type ClaimLoadCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.LoadMatcher
}

// NewClaimLoadCommandHandler creates a handler for load claim operations.
func NewClaimLoadCommandHandler(uowFactory UoWFactory) ClaimLoadCommandHandler {
	return ClaimLoadCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewLoadMatcher(),
	}
}

// Handle processes the claim command: pre-checks the (hauler, load) pair,
// applies the transition in memory, and persists it with the conditional
// write keyed on the Posted status.
func (h *ClaimLoadCommandHandler) Handle(ctx context.Context, cmd ClaimLoadCommand) error {
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

	claimer, err := uow.HaulerRepository().Get(ctx, cmd.HaulerID())
	if err != nil {
		return err
	}

	if err = h.matcher.CanServe(claimer, aggregate); err != nil {
		return err
	}

	if err = aggregate.Claim(cmd.HaulerID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.LoadRepository().Transition(ctx, aggregate, load.StatusPosted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
