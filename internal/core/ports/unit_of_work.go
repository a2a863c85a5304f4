package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Lifecycle commands that touch both a load and a hauler ledger (assign,
// deliver) run both writes inside one unit of work so the conditional
// status update and the capacity movement commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LoadRepository returns a LoadRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	LoadRepository() LoadRepository

	// HaulerRepository returns a HaulerRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	HaulerRepository() HaulerRepository
}
