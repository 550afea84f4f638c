package commands

import (
	"context"
	"time"
)

// UpdateShipmentStatusCommandHandler handles status changes of existing
// shipments. The overwrite is unconditional: any enumerated status may
// replace any other, including Delivered and Cancelled being overwritten
// again. Callers rely on this permissive behavior.
//
// Example:
//
//	handler := NewUpdateShipmentStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateShipmentStatusCommand("96385074", shipment.Dispatched)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment number
//	}
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status
// updates. Requires a ShipmentUoWFactory for transactional persistence.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Looks up the shipment by number (NotFound error when absent), applies
// the new status with the current UTC instant as update time, and
// persists the change. Uses a transaction so a cancelled request never
// leaves a half-written record.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.GetByNumber(ctx, cmd.ShipmentNumber())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
