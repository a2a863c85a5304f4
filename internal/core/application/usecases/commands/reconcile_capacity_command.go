package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

// ErrReconcileCapacityCommandIsNotConstructed is returned when the command
// was not created through NewReconcileCapacityCommand.
var ErrReconcileCapacityCommandIsNotConstructed = errors.New(
	"ReconcileCapacityCommand must be created via NewReconcileCapacityCommand constructor",
)

// ReconcileCapacityCommand triggers a sweep that recomputes every hauler's
// available capacity from the loads actually holding reservations. The
// paired conditional writes keep the ledger correct in normal operation;
// the sweep repairs drift left behind by partial failures.
type ReconcileCapacityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileCapacityCommand creates a command to reconcile capacity ledgers.
func NewReconcileCapacityCommand() ReconcileCapacityCommand {
	return ReconcileCapacityCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileCapacityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCapacityCommandIsNotConstructed)
}
