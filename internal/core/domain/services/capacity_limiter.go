package services

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
)

// DefaultMaxVehiclesPerDriver is the vehicle cap applied when no explicit
// limit is configured.
const DefaultMaxVehiclesPerDriver = 3

// ErrCapacityLimitExceeded is returned when assigning one more vehicle to a
// driver would exceed the configured cap.
var ErrCapacityLimitExceeded = errors.New("driver vehicle capacity limit exceeded")

// VehicleCounter counts vehicles currently bound to a driver. The counter
// must run against the same transaction as the assignment write so the
// count-then-compare sequence cannot race a concurrent assign.
type VehicleCounter interface {
	CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)
}

// CapacityLimiter enforces the per-driver vehicle cap.
type CapacityLimiter struct {
	maxVehicles int
}

// NewCapacityLimiter creates a CapacityLimiter with the given cap. A
// non-positive cap falls back to DefaultMaxVehiclesPerDriver.
func NewCapacityLimiter(maxVehicles int) CapacityLimiter {
	if maxVehicles <= 0 {
		maxVehicles = DefaultMaxVehiclesPerDriver
	}
	return CapacityLimiter{maxVehicles: maxVehicles}
}

// MaxVehicles returns the configured cap.
func (l CapacityLimiter) MaxVehicles() int {
	return l.maxVehicles
}

// CheckCapacity fails with ErrCapacityLimitExceeded when the driver already
// holds the maximum number of vehicles.
func (l CapacityLimiter) CheckCapacity(ctx context.Context, counter VehicleCounter, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	count, err := counter.CountByDriver(ctx, driverID)
	if err != nil {
		return err
	}

	if count >= int64(l.maxVehicles) {
		return fmt.Errorf("%w: driver %s already has %d vehicles (limit %d)",
			ErrCapacityLimitExceeded, driverID, count, l.maxVehicles)
	}

	return nil
}
