// Package hauler provides the Hauler aggregate: a trucker's vehicle profile
// and the capacity ledger that tracks its free cargo space.
//
// The ledger pairs with the load lifecycle:
//   - Reserve debits available capacity when a load is assigned
//   - Release credits it back when the load is delivered
//
// Reserve enforces the occupancy rules: the load's weight must fit the
// available capacity, and a FULL-mode load requires a completely empty
// vehicle. Violations surface as InsufficientCapacityError and
// VehicleNotEmptyError so callers can distinguish the two.
//
// The invariant 0 <= availableCapacity <= totalCapacity holds through every
// operation; Release clamps at total rather than let replays overflow it.
package hauler
