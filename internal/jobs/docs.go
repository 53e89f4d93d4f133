// Package jobs provides scheduled background tasks for the warehouse.
//
// The package includes:
//   - ExpiryMonitorJob: scans the catalog for perishables close to expiry
//   - SnapshotJob: periodically persists the warehouse state
//
// Jobs run on cron schedules and are coordinated by the JobManager, which
// the composition root starts after all dependencies are wired.
package jobs
