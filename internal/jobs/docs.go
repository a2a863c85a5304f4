// Package jobs provides scheduled background tasks for the freight board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the matching engine.
//
// # Available Jobs
//
// 1. CapacityReconciliationJob - Runs every minute to recompute hauler
// capacity ledgers from the loads holding reservations and repair drift.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileCapacityHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job logs every failure; a repaired ledger is logged as
// a warning because it means a paired write was lost at some point.
package jobs
