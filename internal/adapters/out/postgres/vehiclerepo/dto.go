// Package vehiclerepo implements the vehicle repository on GORM, handling
// the conversion between the Vehicle aggregate and its database
// representation. The driver_id column is the single source of truth for
// the driver binding.
package vehiclerepo

import (
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate    string    `gorm:"uniqueIndex"`
	Capacity int
	Active   bool       `gorm:"index"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var driverID *uuid.UUID
	if id := v.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return VehicleDTO{
		ID:       v.ID().Bytes(),
		Plate:    v.Plate(),
		Capacity: v.Capacity(),
		Active:   v.IsActive(),
		DriverID: driverID,
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return vehicle.RestoreVehicle(id, dto.Plate, dto.Capacity, dto.Active, driverID)
}
