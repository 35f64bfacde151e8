// Package driverrepo implements the driver repository on GORM, handling the
// conversion between the Driver aggregate and its database representation.
package driverrepo

import (
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	LicenseCode string
	Active      bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          d.ID().Bytes(),
		Name:        d.Name(),
		LicenseCode: d.LicenseCode(),
		Active:      d.IsActive(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.LicenseCode, dto.Active)
}
