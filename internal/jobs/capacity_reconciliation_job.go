package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CapacityReconciliationJob periodically recomputes every hauler's
// available capacity from the loads holding reservations and repairs
// drifted ledgers. Runs every minute.
type CapacityReconciliationJob struct {
	handler commands.ReconcileCapacityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCapacityReconciliationJob creates the reconciliation job.
func NewCapacityReconciliationJob(
	handler commands.ReconcileCapacityCommandHandler,
	logger *slog.Logger,
) *CapacityReconciliationJob {
	return &CapacityReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "capacity_reconciliation_job"),
	}
}

// Start schedules the reconciliation sweep to run every minute.
func (j *CapacityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileCapacityCommand()

		repaired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Capacity reconciliation failed", "error", handleErr)
			return
		}

		if repaired > 0 {
			j.logger.WarnContext(ctx, "Repaired drifted capacity ledgers", "count", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *CapacityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job stopped")
}
