package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// The vehicle row is the single source of truth for the driver binding, so
// reads that precede an assignment write must go through GetForUpdate.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no vehicle has the given id.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle and takes a row-level write lock on
	// it for the duration of the surrounding transaction. Concurrent
	// assignments and maintenance conflict checks for the same vehicle
	// serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// CountByDriver counts vehicles currently bound to the given driver.
	CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)

	// GetAllManned retrieves all active vehicles that have a driver bound,
	// ordered by plate. Used by order allocation.
	GetAllManned(ctx context.Context) ([]*vehicle.Vehicle, error)
}
