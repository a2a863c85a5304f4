// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetMyLoadsQueryIsNotConstructed = errors.New(
		"GetMyLoadsQuery must be created via NewGetMyLoadsQuery constructor",
	)
)

// GetMyLoadsQuery retrieves every load posted by one business, regardless
// of status, newest first.
type GetMyLoadsQuery struct {
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyLoadsQuery creates a query for a business's posted loads.
func NewGetMyLoadsQuery(businessID kernel.UUID) (GetMyLoadsQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetMyLoadsQuery{}, errs.NewValueIsRequiredErrorWithCause("businessID", err)
	}

	return GetMyLoadsQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyLoadsQueryIsNotConstructed)
}

// BusinessID returns the requesting business's identifier.
func (q GetMyLoadsQuery) BusinessID() kernel.UUID {
	return q.businessID
}

// LoadSummary is the read model shared by the load listing queries. It
// carries the shipment facts and the lifecycle position without the
// transition history.
type LoadSummary struct {
	ID                  kernel.UUID
	Origin              string
	Destination         string
	CargoType           string
	Weight              float64
	Price               float64
	VehicleTypeRequired string
	Mode                load.Mode
	Status              load.Status
	AssignedTo          *kernel.UUID
	PickupDate          time.Time
	CreatedAt           time.Time
}
