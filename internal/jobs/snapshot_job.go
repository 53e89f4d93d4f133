package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SnapshotJob manages the scheduled persistence of warehouse state.
// Runs every five minutes so a crash loses at most one interval of changes.
type SnapshotJob struct {
	handler commands.SaveSnapshotCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSnapshotJob creates a new job for periodic snapshots.
func NewSnapshotJob(handler commands.SaveSnapshotCommandHandler, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "snapshot_job"),
	}
}

// Start begins the snapshot job to run every five minutes.
func (j *SnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx, commands.NewSaveSnapshotCommand()); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started (running every five minutes)")
	return nil
}

// Stop stops the snapshot job.
func (j *SnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
