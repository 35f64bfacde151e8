package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// UnassignVehicleCommandHandler releases a vehicle from its driver.
// Idempotent: a vehicle without a driver commits nothing and leaves the
// free-vehicles cache untouched. A real release drops the cache entry
// after commit.
type UnassignVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	cache      ports.Cache
}

// NewUnassignVehicleCommandHandler creates a handler for vehicle release operations.
func NewUnassignVehicleCommandHandler(uowFactory VehicleUoWFactory, cache ports.Cache) UnassignVehicleCommandHandler {
	return UnassignVehicleCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the vehicle release command.
func (h UnassignVehicleCommandHandler) Handle(ctx context.Context, command UnassignVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if vehicleEntity.DriverID() == nil {
		return nil
	}

	vehicleEntity.UnassignDriver()

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ports.FreeVehiclesCacheKey)

	return nil
}
