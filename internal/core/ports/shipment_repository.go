// Package ports defines the persistence contracts of the shipping core.
// These interfaces decouple the application layer from the storage
// implementation, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository is the persistence gateway for shipment aggregates.
//
// The storage behind it must enforce uniqueness of both the order
// identifier and the shipment number; the application layer's existence
// checks are only an optimization for a friendly Conflict response, the
// constraints are the authoritative guard under concurrent creation.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate, including its items.
	// Returns errs.ObjectAlreadyExistsError when a storage uniqueness
	// constraint (order identifier or shipment number) is violated.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the mutable state of an existing shipment
	// (status and update timestamp). Address, carrier, receiver and
	// items are never rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByNumber retrieves a shipment by its external number, with items
	// loaded eagerly in insertion order. Returns errs.ObjectNotFoundError
	// when no shipment carries the number.
	GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error)

	// GetByOrderID retrieves the shipment created for an order, with items
	// loaded eagerly. Returns errs.ObjectNotFoundError when the order has
	// no shipment yet.
	GetByOrderID(ctx context.Context, orderID string) (*shipment.Shipment, error)
}
