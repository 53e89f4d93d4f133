package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/audit"

	"github.com/robfig/cron/v3"
)

// ExpiryMonitorJob manages the scheduled freshness scan of the catalog.
// Runs every minute to surface perishables that are critical or expired.
// Each finding is recorded on the audit trail and the process log.
type ExpiryMonitorJob struct {
	handler queries.GetExpiringProductsQueryHandler
	trail   *audit.Trail
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpiryMonitorJob creates a new job for monitoring expiry dates.
func NewExpiryMonitorJob(
	handler queries.GetExpiringProductsQueryHandler,
	trail *audit.Trail,
	logger *slog.Logger,
) *ExpiryMonitorJob {
	return &ExpiryMonitorJob{
		handler: handler,
		trail:   trail,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "expiry_monitor_job"),
	}
}

// Start begins the expiry monitor job to run every minute.
func (j *ExpiryMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		warnings, err := j.handler.Handle(ctx, queries.NewGetExpiringProductsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Expiry monitor job failed", "error", err)
			return
		}

		for _, warning := range warnings {
			j.trail.LogWarning(warning)
			j.logger.WarnContext(ctx, "Expiring product detected", "warning", warning)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry monitor job started (running every minute)")
	return nil
}

// Stop stops the expiry monitor job.
func (j *ExpiryMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry monitor job stopped")
}
