package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByNumberQueryHandler retrieves a shipment read model directly
// from the database. Uses raw SQL for the read path of the CQRS split;
// items are always loaded eagerly — a projection without its items would
// violate the read contract.
//
// Example:
//
//	handler := NewGetShipmentByNumberQueryHandler(db)
//	query, _ := NewGetShipmentByNumberQuery("96385074")
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment number
//	}
type GetShipmentByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByNumberQueryHandler creates a handler for shipment
// lookups. Requires a GORM database connection for query execution.
func NewGetShipmentByNumberQueryHandler(db *gorm.DB) GetShipmentByNumberQueryHandler {
	return GetShipmentByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns the canonical projection, or an
// ObjectNotFoundError carrying the queried number when no shipment exists.
func (h GetShipmentByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByNumberQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	var response ShipmentResponse
	var shipmentID string
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_id,
			address_street,
			address_city,
			address_zip,
			carrier,
			receiver_email,
			status
		FROM shipments
		WHERE number = ?
	`, query.ShipmentNumber()).Row()

	err := row.Scan(
		&shipmentID,
		&response.Number,
		&response.OrderID,
		&response.Address.Street,
		&response.Address.City,
		&response.Address.Zip,
		&response.Carrier,
		&response.ReceiverEmail,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentNumber", query.ShipmentNumber())
		}
		return ShipmentResponse{}, err
	}

	response.Status = shipment.Status(status).String()

	items, err := h.loadItems(ctx, shipmentID)
	if err != nil {
		return ShipmentResponse{}, err
	}
	response.Items = items

	return response, nil
}

// loadItems reads the shipment's lines in insertion order.
func (h GetShipmentByNumberQueryHandler) loadItems(ctx context.Context, shipmentID string) ([]ShipmentItemResponse, error) {
	items := make([]ShipmentItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product,
			quantity
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY id
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ShipmentItemResponse
		if err = rows.Scan(&item.Product, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
