package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// maxNumberAttempts bounds shipment number regeneration when a freshly
// generated number already exists in storage.
const maxNumberAttempts = 5

// CreateShipmentCommandHandler handles the business logic for shipment
// creation. It is the only path that brings shipments into existence and
// enforces the one-shipment-per-order rule.
//
// The existence check and the insert run inside one transaction, and the
// storage layer carries unique constraints on the order identifier and
// shipment number; a constraint violation surfaces as the same Conflict
// error as the pre-check, so concurrent duplicate creations cannot both
// succeed.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	response, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // order already has a shipment
//	}
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
//
// Algorithm: check whether the order already has a shipment (Conflict if
// so, nothing is written), generate a shipment number that is free in
// storage, build the aggregate with status Created and the current UTC
// instant, persist it and return its projection. Exactly one insert
// happens on success; zero writes happen on conflict.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (queries.ShipmentResponse, error) {
	if err := cmd.Validate(); err != nil {
		return queries.ShipmentResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.ShipmentResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	existing, err := repo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return queries.ShipmentResponse{}, err
	}
	if existing != nil {
		return queries.ShipmentResponse{}, errs.NewObjectAlreadyExistsError("orderId", cmd.OrderID())
	}

	number, err := h.generateFreeNumber(ctx, repo)
	if err != nil {
		return queries.ShipmentResponse{}, err
	}

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		number,
		cmd.OrderID(),
		cmd.Address(),
		cmd.Carrier(),
		cmd.ReceiverEmail(),
		cmd.Items(),
		time.Now().UTC(),
	)
	if err != nil {
		return queries.ShipmentResponse{}, err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return queries.ShipmentResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return queries.ShipmentResponse{}, err
	}

	return queries.ShipmentResponseFromDomain(aggregate), nil
}

// generateFreeNumber draws shipment numbers until one is unused in
// storage. The generator cannot guarantee uniqueness by itself, so each
// candidate is verified before the insert; the unique index on the number
// column remains the authoritative guard.
func (h *CreateShipmentCommandHandler) generateFreeNumber(
	ctx context.Context,
	repo ports.ShipmentRepository,
) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number := shipment.NewNumber()

		_, err := repo.GetByNumber(ctx, number)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return number, nil
		}
		if err != nil {
			return "", err
		}
		// Number taken; draw again.
	}

	return "", fmt.Errorf("no free shipment number after %d attempts", maxNumberAttempts)
}
