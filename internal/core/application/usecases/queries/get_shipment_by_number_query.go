package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentByNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByNumberQuery must be created via NewGetShipmentByNumberQuery constructor",
	)
)

// GetShipmentByNumberQuery retrieves a single shipment, items included,
// by its external shipment number.
//
// Example:
//
//	query, err := NewGetShipmentByNumberQuery("96385074")
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
type GetShipmentByNumberQuery struct {
	shipmentNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentByNumberQuery creates a query for the given shipment
// number. The number must be non-empty.
func NewGetShipmentByNumberQuery(shipmentNumber string) (GetShipmentByNumberQuery, error) {
	if shipmentNumber == "" {
		return GetShipmentByNumberQuery{}, errs.NewValueIsRequiredError("shipmentNumber")
	}

	return GetShipmentByNumberQuery{
		shipmentNumber: shipmentNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByNumberQueryIsNotConstructed)
}

// ShipmentNumber returns the queried external shipment number.
func (q GetShipmentByNumberQuery) ShipmentNumber() string {
	return q.shipmentNumber
}
