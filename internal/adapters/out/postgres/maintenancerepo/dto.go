// Package maintenancerepo implements the maintenance record repository on
// GORM. Status and type are stored as their string names so the history
// reads directly in SQL.
package maintenancerepo

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"

	"github.com/google/uuid"
)

// MaintenanceRecordDTO represents the database structure for persisting
// maintenance record aggregates.
type MaintenanceRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID `gorm:"type:uuid;index:idx_maintenance_vehicle_scheduled"`
	ScheduledAt time.Time `gorm:"index:idx_maintenance_vehicle_scheduled"`
	PerformedAt *time.Time
	Type        string
	Notes       string
	Status      string `gorm:"index"`
}

// TableName specifies the database table name for maintenance records.
func (MaintenanceRecordDTO) TableName() string {
	return "maintenance_records"
}

func fromDomain(r *maintenance.MaintenanceRecord) MaintenanceRecordDTO {
	var performedAt *time.Time
	if t := r.PerformedAt(); t != nil {
		performedAt = t
	}

	return MaintenanceRecordDTO{
		ID:          r.ID().Bytes(),
		VehicleID:   r.VehicleID().Bytes(),
		ScheduledAt: r.ScheduledAt(),
		PerformedAt: performedAt,
		Type:        r.Type().String(),
		Notes:       r.Notes(),
		Status:      r.Status().String(),
	}
}

func toDomain(dto MaintenanceRecordDTO) (*maintenance.MaintenanceRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	mType, err := maintenance.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := maintenance.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return maintenance.RestoreMaintenanceRecord(
		id, vehicleID, dto.ScheduledAt, dto.PerformedAt, mType, dto.Notes, status)
}
