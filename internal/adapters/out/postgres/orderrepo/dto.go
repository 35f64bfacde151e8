// Package orderrepo implements the order repository on GORM, handling the
// conversion between the Order aggregate and its database representation.
package orderrepo

import (
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID *uuid.UUID `gorm:"type:uuid;index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	Weight    int
	Status    int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var vehicleID, driverID *uuid.UUID
	if id := o.VehicleID(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		VehicleID: vehicleID,
		DriverID:  driverID,
		Weight:    o.Weight(),
		Status:    int(o.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}

		vehicleID = &vID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return order.RestoreOrder(id, dto.Weight, vehicleID, driverID, order.Status(dto.Status))
}
