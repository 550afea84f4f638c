// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The unique indexes on Number and OrderID are the authoritative
// guards behind the one-shipment-per-order rule and number uniqueness; the
// application-level existence checks only exist for friendly error responses.
type ShipmentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"uniqueIndex"`
	OrderID       string     `gorm:"uniqueIndex"`
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Carrier       string
	ReceiverEmail string
	Items         []ItemDTO `gorm:"foreignKey:ShipmentID;references:ID"`
	Status        int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents the embedded delivery address within the shipment
// table.
type AddressDTO struct {
	Street string
	City   string
	Zip    string
}

// ItemDTO represents one shipment line. The auto-incremented primary key
// doubles as the insertion-order sort key when items are read back.
type ItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Product    string
	Quantity   int
}

// TableName specifies the database table name for shipment line entities.
func (ItemDTO) TableName() string {
	return "shipment_items"
}

// fromDomain converts a shipment domain aggregate to its database
// representation, items included.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ShipmentID: aggregate.ID().Bytes(),
			Product:    item.Product(),
			Quantity:   item.Quantity(),
		})
	}

	return ShipmentDTO{
		ID:      aggregate.ID().Bytes(),
		Number:  aggregate.Number(),
		OrderID: aggregate.OrderID(),
		Address: AddressDTO{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			Zip:    aggregate.Address().Zip(),
		},
		Carrier:       aggregate.Carrier(),
		ReceiverEmail: aggregate.ReceiverEmail(),
		Items:         items,
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := shipment.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Zip)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := shipment.NewItem(itemDTO.Product, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return shipment.RestoreShipment(
		id,
		dto.Number,
		dto.OrderID,
		address,
		dto.Carrier,
		dto.ReceiverEmail,
		items,
		shipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
