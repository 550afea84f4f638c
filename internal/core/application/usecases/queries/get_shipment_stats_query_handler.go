package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetShipmentStatsQueryHandler counts shipments per status with a single
// aggregate query. Like the other read handlers it goes straight to SQL.
type GetShipmentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatsQueryHandler creates a handler for shipment stats.
// Requires a GORM database connection for query execution.
func NewGetShipmentStatsQueryHandler(db *gorm.DB) GetShipmentStatsQueryHandler {
	return GetShipmentStatsQueryHandler{db: db}
}

// Handle executes the stats query. Returns one row per status present in
// storage, ordered by the status enumeration; statuses without shipments
// are omitted.
func (h GetShipmentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatsQuery,
) ([]ShipmentStatsRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]ShipmentStatsRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM shipments
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		stats = append(stats, ShipmentStatsRow{
			Status: shipment.Status(status).String(),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
