package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGetAvailableLoadsQueryIsNotConstructed = errors.New(
		"GetAvailableLoadsQuery must be created via NewGetAvailableLoadsQuery constructor",
	)
)

// GetAvailableLoadsQuery retrieves the posted loads a hauler can actually
// take. The board is personal: it is filtered by the hauler's remaining
// capacity, vehicle type, current occupancy, and position.
//
// RadiusKm and Limit are optional overrides; non-positive values fall back
// to the matcher defaults.
type GetAvailableLoadsQuery struct {
	haulerID kernel.UUID
	radiusKm float64
	limit    int

	guard guard.ConstructorGuard
}

// NewGetAvailableLoadsQuery creates a query for a hauler's load board.
func NewGetAvailableLoadsQuery(haulerID kernel.UUID, radiusKm float64, limit int) (GetAvailableLoadsQuery, error) {
	if err := haulerID.Validate(); err != nil {
		return GetAvailableLoadsQuery{}, errs.NewValueIsRequiredErrorWithCause("haulerID", err)
	}

	return GetAvailableLoadsQuery{
		haulerID: haulerID,
		radiusKm: radiusKm,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableLoadsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableLoadsQueryIsNotConstructed)
}

// HaulerID returns the requesting hauler's identifier.
func (q GetAvailableLoadsQuery) HaulerID() kernel.UUID {
	return q.haulerID
}

// RadiusKm returns the requested search radius, or a non-positive value
// for the default.
func (q GetAvailableLoadsQuery) RadiusKm() float64 {
	return q.radiusKm
}

// Limit returns the requested page size, or a non-positive value for the
// default.
func (q GetAvailableLoadsQuery) Limit() int {
	return q.limit
}
