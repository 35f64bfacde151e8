package commands

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles vehicle registration.
// New vehicles start active and unassigned. The free-vehicles cache is left
// alone; only assignment changes invalidate it, so a fresh vehicle becomes
// visible when the cached entry expires.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle creation command.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
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
	vehicleEntity, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Plate(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, vehicleEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
