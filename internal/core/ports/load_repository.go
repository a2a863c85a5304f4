// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
)

// AvailableLoadsFilter narrows the board of claimable loads to those a
// specific hauler can actually serve. Built by the load matcher from the
// hauler's profile and ledger state.
type AvailableLoadsFilter struct {
	// MaxWeight excludes loads heavier than the hauler's available capacity.
	MaxWeight float64

	// VehicleType matches the load's required vehicle type exactly.
	VehicleType string

	// PartialOnly excludes FULL-mode loads. Set when the hauler's vehicle
	// already carries cargo.
	PartialOnly bool

	// Origin, when set, restricts results to loads whose origin lies within
	// RadiusKm of this point. Loads without coordinates are excluded.
	Origin *kernel.GeoPoint

	// RadiusKm is the search radius around Origin, in kilometers.
	RadiusKm float64

	// Limit caps the page size. Results are ordered newest first.
	Limit int
}

// LoadRepository defines the persistence contract for load aggregates.
// Besides plain CRUD it owns the conditional status write that arbitrates
// concurrent lifecycle transitions.
type LoadRepository interface {
	// Add persists a new load aggregate to storage.
	// The load must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *load.Load) error

	// Transition persists a lifecycle transition already applied to the
	// in-memory aggregate, conditioned on the stored status still being
	// expected. The write updates the load row and appends the latest
	// history entry in one statement sequence.
	//
	// When the condition fails the repository re-reads the row to decide:
	//   - the load no longer exists: *errs.ObjectNotFoundError
	//   - the status moved on: *load.StatusConflictError carrying the
	//     expected and observed statuses
	//
	// Under concurrent writers at most one Transition per (id, expected)
	// pair succeeds.
	Transition(ctx context.Context, aggregate *load.Load, expected load.Status) error

	// Get retrieves a load aggregate by its unique identifier, including
	// its full history log.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetAllByCreator retrieves all loads posted by a business actor,
	// newest first.
	GetAllByCreator(ctx context.Context, creatorID kernel.UUID) ([]*load.Load, error)

	// GetAllByAssignee retrieves all loads currently assigned to a hauler,
	// newest first.
	GetAllByAssignee(ctx context.Context, haulerID kernel.UUID) ([]*load.Load, error)

	// GetAllReserving retrieves all loads holding reserved capacity, i.e.
	// in Assigned or InTransit status. Used by the capacity reconciliation
	// job to recompute hauler ledgers.
	GetAllReserving(ctx context.Context) ([]*load.Load, error)

	// FindAvailable retrieves posted loads matching the filter, newest
	// first, capped at filter.Limit.
	FindAvailable(ctx context.Context, filter AvailableLoadsFilter) ([]*load.Load, error)
}
