package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// ReconcileCapacityCommandHandler recomputes every hauler's available
// capacity from the loads in reserving statuses (Assigned and InTransit)
// and repairs any ledger that disagrees.
type ReconcileCapacityCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileCapacityCommandHandler creates a handler for ledger
// reconciliation sweeps.
func NewReconcileCapacityCommandHandler(uowFactory UoWFactory) ReconcileCapacityCommandHandler {
	return ReconcileCapacityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconcile command. Returns the number of repaired
// ledgers.
func (h *ReconcileCapacityCommandHandler) Handle(ctx context.Context, cmd ReconcileCapacityCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Lock the ledgers before summing reservations. An assign that commits
	// between the two reads would otherwise be seen as a debit with no
	// reservation behind it and be rewritten away; holding the row locks
	// makes the concurrent debit wait for the sweep instead.
	haulers, err := uow.HaulerRepository().GetAllForUpdate(ctx)
	if err != nil {
		return 0, err
	}

	reserving, err := uow.LoadRepository().GetAllReserving(ctx)
	if err != nil {
		return 0, err
	}

	reservedByHauler := make(map[kernel.UUID]float64)
	for _, l := range reserving {
		if assignee := l.AssignedTo(); assignee != nil {
			reservedByHauler[*assignee] += l.Weight()
		}
	}

	repaired := 0
	for _, aggregate := range haulers {
		drifted, reconcileErr := aggregate.Reconcile(reservedByHauler[aggregate.ID()])
		if reconcileErr != nil {
			return 0, reconcileErr
		}
		if !drifted {
			continue
		}

		if err = uow.HaulerRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
		repaired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return repaired, nil
}
