package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/audit"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiryMonitorJob *ExpiryMonitorJob
	snapshotJob      *SnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	expiringHandler queries.GetExpiringProductsQueryHandler,
	snapshotHandler commands.SaveSnapshotCommandHandler,
	trail *audit.Trail,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiryMonitorJob: NewExpiryMonitorJob(expiringHandler, trail, logger),
		snapshotJob:      NewSnapshotJob(snapshotHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiryMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start expiry monitor job: %w", err)
	}

	if err := jm.snapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.expiryMonitorJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
	jm.expiryMonitorJob.Stop()
}
