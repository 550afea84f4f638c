package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a request to move an existing
// shipment to a new lifecycle status. The status must be one of the
// enumerated values; which value is unrestricted (no transition table).
type UpdateShipmentStatusCommand struct {
	shipmentNumber string
	status         shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to overwrite a
// shipment's status. The shipment number must be non-empty and the status
// must be a valid enumeration value.
func NewUpdateShipmentStatusCommand(shipmentNumber string, status shipment.Status) (UpdateShipmentStatusCommand, error) {
	if err := errors.Join(
		validateRequired("shipmentNumber", shipmentNumber),
		status.Validate(),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		shipmentNumber: shipmentNumber,
		status:         status,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentNumber returns the external number of the shipment to update.
func (c UpdateShipmentStatusCommand) ShipmentNumber() string {
	return c.shipmentNumber
}

// Status returns the status to apply.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}
