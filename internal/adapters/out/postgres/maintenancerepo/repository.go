package maintenancerepo

import (
	"context"
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMaintenanceRepository implements MaintenanceRepository using GORM.
type GormMaintenanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMaintenanceRepository creates a new GORM maintenance repository.
func NewGormMaintenanceRepository(db *gorm.DB, tracker aggregateTracker) *GormMaintenanceRepository {
	return &GormMaintenanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new maintenance record to the database.
func (r *GormMaintenanceRepository) Add(ctx context.Context, aggregate *maintenance.MaintenanceRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing maintenance record to the database.
func (r *GormMaintenanceRepository) Update(ctx context.Context, aggregate *maintenance.MaintenanceRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MaintenanceRecordDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"performed_at": dto.PerformedAt,
			"notes":        dto.Notes,
			"status":       dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a maintenance record by ID.
func (r *GormMaintenanceRepository) Get(ctx context.Context, id kernel.UUID) (*maintenance.MaintenanceRecord, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a maintenance record by ID holding a FOR UPDATE row
// lock until the surrounding transaction ends.
func (r *GormMaintenanceRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*maintenance.MaintenanceRecord, error) {
	return r.get(ctx, id, true)
}

func (r *GormMaintenanceRepository) get(
	ctx context.Context,
	id kernel.UUID,
	forUpdate bool,
) (*maintenance.MaintenanceRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto MaintenanceRecordDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("maintenance record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetNonTerminalInWindow retrieves the vehicle's Pending and InProgress
// records with scheduled_at in [from, to]. BETWEEN keeps both boundaries
// inclusive, so a slot exactly 24h away still conflicts.
func (r *GormMaintenanceRepository) GetNonTerminalInWindow(
	ctx context.Context,
	vehicleID kernel.UUID,
	from, to time.Time,
) ([]*maintenance.MaintenanceRecord, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MaintenanceRecordDTO
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status IN ? AND scheduled_at BETWEEN ? AND ?",
			vehicleID.Bytes(),
			[]string{maintenance.StatusPending.String(), maintenance.StatusInProgress.String()},
			from, to).
		Order("scheduled_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*maintenance.MaintenanceRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
