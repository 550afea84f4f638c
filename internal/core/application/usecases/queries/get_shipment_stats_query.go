package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentStatsQueryIsNotConstructed = errors.New(
		"GetShipmentStatsQuery must be created via NewGetShipmentStatsQuery constructor",
	)
)

// GetShipmentStatsQuery retrieves the number of shipments per lifecycle
// status. Backs the periodic stats job and the startup log; it has no
// HTTP surface.
type GetShipmentStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentStatsQuery creates a parameterless stats query.
func NewGetShipmentStatsQuery() GetShipmentStatsQuery {
	return GetShipmentStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatsQueryIsNotConstructed)
}

// ShipmentStatsRow is one line of the stats read model: a status label
// and how many shipments currently carry it.
type ShipmentStatsRow struct {
	Status string
	Count  int64
}
