// Package shipment contains the shipment aggregate and its value objects.
//
// A Shipment tracks the physical fulfillment of a single customer order.
// The aggregate enforces these invariants:
//   - at most one shipment exists per order (enforced together with the
//     persistence layer's unique constraint on the order identifier)
//   - the shipment number, order identifier, address, carrier, receiver
//     email and items are fixed at creation
//   - only the status is mutable, through ChangeStatus, which also stamps
//     the update time
//
// Status transitions are deliberately unrestricted: any enumerated status
// may replace any other, including Delivered and Cancelled. Callers depend
// on this permissive behavior.
//
// The package also provides the shipment number generator, which produces
// 8-digit EAN-8 style codes for external display. Generation is random and
// not collision-free; uniqueness is verified against storage at creation
// time and backed by a unique index.
package shipment
