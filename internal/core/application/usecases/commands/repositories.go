// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// HaulerRepoFactory provides access to the hauler repository within a transaction.
	HaulerRepoFactory interface {
		HaulerRepository() ports.HaulerRepository
	}

	// LoadUoW manages transactions for load-only operations.
	// Used when commands only modify load aggregates.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// HaulerUoW manages transactions for hauler-only operations.
	// Used when commands only modify hauler aggregates.
	HaulerUoW interface {
		TxManager
		HaulerRepoFactory
	}

	// HaulerUoWFactory creates new hauler unit of work instances.
	HaulerUoWFactory interface {
		Create() HaulerUoW
	}

	// UoW manages transactions across both load and hauler aggregates.
	// Used for commands that pair a lifecycle transition with a capacity
	// ledger movement, so both commit or roll back together.
	UoW interface {
		TxManager
		LoadRepoFactory
		HaulerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
