// Package ports defines repository and cache interfaces for the fleet
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, driver *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, driver *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no driver has the given id.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate by its unique identifier and
	// locks its row until the surrounding transaction ends. Operations that
	// must serialize per driver, such as the capacity count before an
	// assignment, read through this method.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
