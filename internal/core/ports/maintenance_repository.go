package ports

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/maintenance"
)

// MaintenanceRepository defines the persistence contract for maintenance
// record aggregates. Records are never deleted; cancelled and completed
// records stay in storage as history.
type MaintenanceRepository interface {
	// Add persists a new maintenance record to storage.
	Add(ctx context.Context, record *maintenance.MaintenanceRecord) error

	// Update persists changes to an existing maintenance record.
	Update(ctx context.Context, record *maintenance.MaintenanceRecord) error

	// Get retrieves a maintenance record by its unique identifier.
	// Returns errs.ObjectNotFoundError when no record has the given id.
	Get(ctx context.Context, id kernel.UUID) (*maintenance.MaintenanceRecord, error)

	// GetForUpdate retrieves a maintenance record and takes a row-level
	// write lock on it for the duration of the surrounding transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*maintenance.MaintenanceRecord, error)

	// GetNonTerminalInWindow retrieves the vehicle's Pending and InProgress
	// records whose scheduledAt falls inside [from, to], boundaries
	// included. Used by the scheduling conflict check.
	GetNonTerminalInWindow(
		ctx context.Context,
		vehicleID kernel.UUID,
		from, to time.Time,
	) ([]*maintenance.MaintenanceRecord, error)
}
