// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the freight marketplace. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - LoadMatcher: A domain service pairing haulers with claimable loads
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
