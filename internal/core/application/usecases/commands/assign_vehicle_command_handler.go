package commands

import (
	"context"

	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"
)

// AssignVehicleCommandHandler binds a vehicle to a driver.
//
// The checks run in a fixed order inside one transaction: driver existence
// (locked for update), driver activity, vehicle existence (locked for
// update), vehicle activity, existing binding, capacity cap. The capacity
// count runs on the same transaction as the write. The driver row lock
// serializes concurrent assignments for the same driver, so two transactions
// binding different vehicles cannot both pass the count below the cap; the
// vehicle row lock serializes assignments of the same vehicle. On success
// the free-vehicles cache entry is dropped before returning.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(uowFactory, limiter, cache)
//	cmd, _ := NewAssignVehicleCommand(driverID, vehicleID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // driver or vehicle does not exist
//	case errors.Is(err, vehicle.ErrDriverAlreadyAssigned):
//	    // vehicle already bound
//	case errors.Is(err, services.ErrCapacityLimitExceeded):
//	    // driver at the cap
//	}
type AssignVehicleCommandHandler struct {
	uowFactory AssignmentUoWFactory
	limiter    services.CapacityLimiter
	cache      ports.Cache
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment operations.
func NewAssignVehicleCommandHandler(
	uowFactory AssignmentUoWFactory,
	limiter services.CapacityLimiter,
	cache ports.Cache,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
		limiter:    limiter,
		cache:      cache,
	}
}

// Handle processes the vehicle assignment command.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, command AssignVehicleCommand) error {
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

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	driverEntity, err := driverRepo.GetForUpdate(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = driverEntity.EnsureActive(); err != nil {
		return err
	}

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if err = vehicleEntity.AssignDriver(command.DriverID()); err != nil {
		return err
	}

	if err = h.limiter.CheckCapacity(ctx, vehicleRepo, command.DriverID()); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ports.FreeVehiclesCacheKey)

	return nil
}
