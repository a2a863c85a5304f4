// Package load provides the Load aggregate and its lifecycle state machine
// for the freight marketplace.
//
// The package includes:
//   - Load: the aggregate root owning a shipment's identity, attributes,
//     assignment, and append-only history log
//   - Status: the seven-state lifecycle enumeration
//   - Mode: FULL/PARTIAL vehicle occupancy
//   - ValidateTransition: the role-gated transition validator
//   - typed transition errors, including StatusConflictError for losers of
//     concurrent conditional writes
//
// Key business rules:
//   - a load is created by a business actor in POSTED status
//   - any hauler may claim a POSTED load; the persistence layer's
//     conditional write arbitrates concurrent claims
//   - the business confirms (ASSIGNED), the hauler moves it (IN_TRANSIT,
//     DELIVERED), the business closes it (CLOSED)
//   - CANCELLED is reachable only before assignment; CLOSED and CANCELLED
//     are terminal
//   - every accepted transition appends to the history log, whose last
//     entry always equals the current status
package load
