package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to create the shipment for an
// order. At most one shipment may exist per order; the handler fails with
// a Conflict error when one already does.
//
// Example:
//
//	address, _ := shipment.NewAddress("Main 1", "Amsterdam", "1011AB")
//	item, _ := shipment.NewItem("Widget", 2)
//	cmd, err := NewCreateShipmentCommand("O-1", address, "DHL", "a@b.com", []shipment.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
type CreateShipmentCommand struct {
	orderID       string
	address       shipment.Address
	carrier       string
	receiverEmail string
	items         []shipment.Item

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Order identifier, carrier and receiver email must be non-empty, the
// address must be constructed, and at least one constructed item is
// required. Returns the joined validation errors otherwise.
func NewCreateShipmentCommand(
	orderID string,
	address shipment.Address,
	carrier string,
	receiverEmail string,
	items []shipment.Item,
) (CreateShipmentCommand, error) {
	if err := errors.Join(
		validateRequired("orderId", orderID),
		address.Validate(),
		validateRequired("carrier", carrier),
		validateRequired("receiverEmail", receiverEmail),
		validateItems(items),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		orderID:       orderID,
		address:       address,
		carrier:       carrier,
		receiverEmail: receiverEmail,
		items:         items,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the business key of the order being shipped.
func (c CreateShipmentCommand) OrderID() string {
	return c.orderID
}

// Address returns the delivery address.
func (c CreateShipmentCommand) Address() shipment.Address {
	return c.address
}

// Carrier returns the carrier name.
func (c CreateShipmentCommand) Carrier() string {
	return c.carrier
}

// ReceiverEmail returns the receiver's email address.
func (c CreateShipmentCommand) ReceiverEmail() string {
	return c.receiverEmail
}

// Items returns the shipment lines in request order.
func (c CreateShipmentCommand) Items() []shipment.Item {
	return c.items
}

func validateRequired(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func validateItems(items []shipment.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}
