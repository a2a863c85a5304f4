package services

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/hauler"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
)

// Default matching parameters, applied when the caller does not override them.
const (
	// DefaultRadiusKm bounds the geographic search around the hauler's
	// position.
	DefaultRadiusKm = 100.0

	// DefaultPageSize caps how many loads a single matching query returns.
	DefaultPageSize = 20
)

// ErrVehicleTypeMismatch is returned when a load requires a different
// vehicle type than the hauler operates.
var ErrVehicleTypeMismatch = errors.New("vehicle type mismatch")

// ErrLoadNotClaimable is returned when a load is no longer in Posted status
// and therefore cannot be claimed.
var ErrLoadNotClaimable = errors.New("load is not claimable")

// LoadMatcher is a domain service that pairs haulers with claimable loads.
//
// It works in two directions:
//   - BuildFilter derives a repository query from a hauler's profile and
//     ledger, so the board only shows loads the hauler could actually take
//   - CanServe verifies a concrete (hauler, load) pair, used as the
//     fail-fast pre-check before a claim is attempted
//
// Matching rules:
//   - only Posted loads participate
//   - the load's weight must fit the hauler's available capacity
//   - the load's required vehicle type must equal the hauler's
//   - a partially loaded vehicle only matches PARTIAL-mode loads
//   - when the hauler has a known position, loads are limited to a radius
//     around it (DefaultRadiusKm unless overridden)
//
// The matcher is advisory: it narrows candidates and rejects obvious
// mismatches, but the claim itself is arbitrated by the repository's
// conditional write.
type LoadMatcher struct{}

// NewLoadMatcher creates a new LoadMatcher instance.
func NewLoadMatcher() LoadMatcher {
	return LoadMatcher{}
}

// BuildFilter derives the available-loads query for a hauler. radiusKm and
// limit fall back to DefaultRadiusKm and DefaultPageSize when non-positive.
// The radius clause is only emitted when the hauler has reported a position;
// the (0,0) unknown location matches loads anywhere.
func (m LoadMatcher) BuildFilter(h *hauler.Hauler, radiusKm float64, limit int) (ports.AvailableLoadsFilter, error) {
	if err := h.Validate(); err != nil {
		return ports.AvailableLoadsFilter{}, err
	}

	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	filter := ports.AvailableLoadsFilter{
		MaxWeight:   h.AvailableCapacity(),
		VehicleType: h.VehicleType(),
		PartialOnly: !h.HasFullVehicleFree(),
		RadiusKm:    radiusKm,
		Limit:       limit,
	}

	if location := h.Location(); !location.IsZero() {
		filter.Origin = &location
	}

	return filter, nil
}

// CanServe verifies that a hauler is able to claim a specific load.
//
// Returns:
//   - ErrLoadNotClaimable when the load is not in Posted status
//   - ErrVehicleTypeMismatch when the vehicle types differ
//   - the hauler's ledger errors (insufficient capacity, vehicle not empty)
//   - nil when the pair matches
func (m LoadMatcher) CanServe(h *hauler.Hauler, l *load.Load) error {
	if err := errors.Join(h.Validate(), l.Validate()); err != nil {
		return err
	}

	if l.Status() != load.StatusPosted {
		return fmt.Errorf("%w: load %s is %s", ErrLoadNotClaimable, l.ID(), l.Status())
	}

	if l.Details().VehicleTypeRequired != h.VehicleType() {
		return fmt.Errorf("%w: load requires %s, hauler operates %s",
			ErrVehicleTypeMismatch, l.Details().VehicleTypeRequired, h.VehicleType())
	}

	return h.CheckReserve(l.Weight(), l.Mode())
}
