package shipment

import (
	"errors"
	"slices"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Shipment is the aggregate root tracking the physical fulfillment of a
// single customer order.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and a non-empty shipment number
//   - Must reference exactly one order; at most one non-deleted shipment
//     exists per order (backed by a storage unique constraint)
//   - Address, carrier, receiver email and items are fixed at creation
//   - Items form a non-empty ordered sequence
//   - Only the status changes after creation, via ChangeStatus
//
// The struct uses private fields to ensure encapsulation and can only be
// built through its constructors.
type Shipment struct {
	// id is the surrogate identifier used by persistence
	id kernel.UUID

	// number is the system-generated external identifier, assigned once
	number string

	// orderID is the business key supplied by the caller
	orderID string

	// address is the delivery destination
	address Address

	// carrier transports the shipment
	carrier string

	// receiverEmail is the contact address of the receiver
	receiverEmail string

	// items is the ordered, creation-fixed sequence of shipped lines
	items []Item

	// status is the current lifecycle state
	status Status

	// createdAt is the UTC creation instant, set once
	createdAt time.Time

	// updatedAt is set on every status change, absent before the first one
	updatedAt *time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a new Shipment with status Created and no update
// timestamp. This is the only path that brings a shipment into existence;
// the caller supplies the generated number and the creation instant
// (expected to be UTC).
//
// Returns a validation error if the identifier, number, order identifier,
// address, carrier, receiver email or items are invalid. Items must be a
// non-empty sequence of constructed Item values; their order is preserved.
func NewShipment(
	id kernel.UUID,
	number string,
	orderID string,
	address Address,
	carrier string,
	receiverEmail string,
	items []Item,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setOrderID(orderID),
		s.setAddress(address),
		s.setCarrier(carrier),
		s.setReceiverEmail(receiverEmail),
		s.setItems(items),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state.
// Unlike NewShipment it accepts any valid status and an optional update
// timestamp. Used exclusively by persistence adapters.
func RestoreShipment(
	id kernel.UUID,
	number string,
	orderID string,
	address Address,
	carrier string,
	receiverEmail string,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
		updatedAt:     updatedAt,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setOrderID(orderID),
		s.setAddress(address),
		s.setCarrier(carrier),
		s.setReceiverEmail(receiverEmail),
		s.setItems(items),
		s.setStatus(status),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
// Called when aggregates cross the persistence boundary.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their surrogate identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Number returns the external shipment number.
func (s *Shipment) Number() string {
	return s.number
}

// OrderID returns the business key of the shipped order.
func (s *Shipment) OrderID() string {
	return s.orderID
}

// Address returns the delivery address.
func (s *Shipment) Address() Address {
	return s.address
}

// Carrier returns the carrier name.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// ReceiverEmail returns the receiver's email address.
func (s *Shipment) ReceiverEmail() string {
	return s.receiverEmail
}

// Items returns a copy of the shipment's items in insertion order.
func (s *Shipment) Items() []Item {
	return slices.Clone(s.items)
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the UTC creation instant.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the instant of the last status change, or nil if the
// status never changed since creation.
func (s *Shipment) UpdatedAt() *time.Time {
	return s.updatedAt
}

// ChangeStatus overwrites the shipment status and stamps the update time.
//
// Any enumerated status is accepted from any current status; there is no
// transition table and no terminal state. Re-applying the current status
// succeeds and still updates the timestamp.
//
// Returns a validation error only when newStatus is outside the
// enumeration.
func (s *Shipment) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	s.status = newStatus
	s.updatedAt = &at
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	s.number = number
	return nil
}

func (s *Shipment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}

func (s *Shipment) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setReceiverEmail(receiverEmail string) error {
	if receiverEmail == "" {
		return errs.NewValueIsRequiredError("receiverEmail")
	}
	s.receiverEmail = receiverEmail
	return nil
}

func (s *Shipment) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = slices.Clone(items)
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}
