package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentStatsJob *ShipmentStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the stats query handler as a dependency to wire up job execution.
func NewJobManager(
	statsHandler queries.GetShipmentStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentStatsJob: NewShipmentStatsJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentStatsJob.Stop()
}
