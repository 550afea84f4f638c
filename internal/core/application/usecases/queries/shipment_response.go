// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models; ShipmentResponse is the single canonical
// projection of a shipment, shared by every API version and by the
// creation command's reply.
package queries

import (
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentResponse is the canonical read-facing projection of a shipment.
// All wire versions serialize this one shape; there are no per-version
// response types.
type ShipmentResponse struct {
	Number        string                 `json:"number"`
	OrderID       string                 `json:"orderId"`
	Address       AddressResponse        `json:"address"`
	Carrier       string                 `json:"carrier"`
	ReceiverEmail string                 `json:"receiverEmail"`
	Status        string                 `json:"status"`
	Items         []ShipmentItemResponse `json:"items"`
}

// AddressResponse is the projection of a shipment's delivery address.
type AddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// ShipmentItemResponse is the projection of a single shipment line.
type ShipmentItemResponse struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// ShipmentResponseFromDomain projects a shipment aggregate into the
// canonical response shape, preserving item order.
func ShipmentResponseFromDomain(s *shipment.Shipment) ShipmentResponse {
	items := make([]ShipmentItemResponse, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, ShipmentItemResponse{
			Product:  item.Product(),
			Quantity: item.Quantity(),
		})
	}

	return ShipmentResponse{
		Number:  s.Number(),
		OrderID: s.OrderID(),
		Address: AddressResponse{
			Street: s.Address().Street(),
			City:   s.Address().City(),
			Zip:    s.Address().Zip(),
		},
		Carrier:       s.Carrier(),
		ReceiverEmail: s.ReceiverEmail(),
		Status:        s.Status().String(),
		Items:         items,
	}
}
