package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/load"
)

// PostLoadCommandHandler handles the business logic for publishing a load.
// The load starts in Posted status with its first history entry and becomes
// visible to matching haulers immediately after commit.
type PostLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewPostLoadCommandHandler creates a handler for load posting operations.
// Requires a LoadUoWFactory for transactional persistence.
func NewPostLoadCommandHandler(uowFactory LoadUoWFactory) PostLoadCommandHandler {
	return PostLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the post load command.
// Creates the aggregate in Posted status and persists it with its initial
// history entry, rolled back together on any failure.
func (h *PostLoadCommandHandler) Handle(ctx context.Context, cmd PostLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := load.NewLoad(cmd.LoadID(), cmd.CreatedBy(), cmd.Details(), time.Now().UTC())
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

	if err = uow.LoadRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
