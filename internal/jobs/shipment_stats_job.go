package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ShipmentStatsJob periodically logs how many shipments sit in each
// lifecycle status. Runs every minute.
type ShipmentStatsJob struct {
	handler queries.GetShipmentStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentStatsJob creates a new job for logging shipment statistics.
func NewShipmentStatsJob(handler queries.GetShipmentStatsQueryHandler, logger *slog.Logger) *ShipmentStatsJob {
	return &ShipmentStatsJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_stats_job"),
	}
}

// Start begins the shipment stats job to run at the top of every minute.
func (j *ShipmentStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetShipmentStatsQuery()

		stats, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Shipment stats job failed", "error", handleErr)
			return
		}

		attrs := make([]any, 0, len(stats)*2)
		for _, row := range stats {
			attrs = append(attrs, row.Status, row.Count)
		}
		j.logger.InfoContext(ctx, "Shipment stats", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment stats job started (running every minute)")
	return nil
}

// Stop stops the shipment stats job.
func (j *ShipmentStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment stats job stopped")
}
