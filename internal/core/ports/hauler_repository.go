package ports

import (
	"context"

	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// HaulerRepository defines the persistence contract for hauler aggregates,
// including their capacity ledgers.
type HaulerRepository interface {
	// Add persists a new hauler aggregate to storage.
	// The hauler must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *hauler.Hauler) error

	// Update persists changes to an existing hauler aggregate, including
	// ledger movements applied in memory via Reserve or Release.
	Update(ctx context.Context, aggregate *hauler.Hauler) error

	// Get retrieves a hauler aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*hauler.Hauler, error)

	// GetAll retrieves every hauler profile.
	GetAll(ctx context.Context) ([]*hauler.Hauler, error)

	// GetAllForUpdate retrieves every hauler profile with the rows locked
	// for the duration of the surrounding transaction. The capacity
	// reconciliation sweep locks the ledgers before summing reservations so
	// a concurrent assign cannot commit a debit between the sweep's reads
	// and have it rewritten.
	GetAllForUpdate(ctx context.Context) ([]*hauler.Hauler, error)

	// ReserveCapacity atomically debits the hauler's available capacity by
	// weight, mirroring hauler.Reserve as a conditional arithmetic UPDATE.
	// The condition enforces the ledger rules at write time:
	//   - available capacity must cover the weight, else
	//     *hauler.InsufficientCapacityError
	//   - FULL mode additionally requires an empty vehicle, else
	//     *hauler.VehicleNotEmptyError
	ReserveCapacity(ctx context.Context, id kernel.UUID, weight float64, mode load.Mode) error

	// ReleaseCapacity atomically credits the hauler's available capacity by
	// weight, clamped at the vehicle's total.
	ReleaseCapacity(ctx context.Context, id kernel.UUID, weight float64) error
}
