package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules holds the cron specs (with seconds) of the background jobs.
type Schedules struct {
	LowStock        string
	DeliveryBacklog string
	MaxPendingWait  time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockJob *LowStockMonitorJob
	backlogJob  *DeliveryBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies; the jobs never change data.
func NewJobManager(
	lowStock lowStockReader,
	deliveries deliveryReader,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockJob: NewLowStockMonitorJob(lowStock, schedules.LowStock, logger),
		backlogJob:  NewDeliveryBacklogJob(deliveries, schedules.DeliveryBacklog, schedules.MaxPendingWait, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock monitor job: %w", err)
	}

	if err := jm.backlogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockJob.Stop()
		return fmt.Errorf("failed to start delivery backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.backlogJob.Stop()
	jm.lowStockJob.Stop()
}
