package commands

import (
	"context"
	"fmt"

	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/clock"
)

// ScheduleMaintenanceCommandHandler books a maintenance slot for a vehicle.
//
// The checks run in a fixed order inside one transaction: vehicle existence
// (locked for update), vehicle activity, past date, conflict window. The
// vehicle row lock serializes concurrent scheduling for the same vehicle, so
// two conflicting slots cannot both pass the window check. A slot conflicts
// when a Pending or InProgress record for the same vehicle lies within
// maintenance.ConflictWindow of the requested time, boundaries included.
type ScheduleMaintenanceCommandHandler struct {
	uowFactory MaintenanceUoWFactory
	clock      clock.Clock
}

// NewScheduleMaintenanceCommandHandler creates a handler for maintenance scheduling.
func NewScheduleMaintenanceCommandHandler(
	uowFactory MaintenanceUoWFactory,
	clk clock.Clock,
) ScheduleMaintenanceCommandHandler {
	return ScheduleMaintenanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the maintenance scheduling command.
func (h ScheduleMaintenanceCommandHandler) Handle(ctx context.Context, command ScheduleMaintenanceCommand) error {
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
	maintenanceRepo := uow.MaintenanceRepository()

	vehicleEntity, err := vehicleRepo.GetForUpdate(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if !vehicleEntity.IsActive() {
		return vehicle.ErrVehicleIsNotActive
	}

	if command.ScheduledAt().Before(h.clock.Now()) {
		return maintenance.ErrScheduledAtInPast
	}

	conflicts, err := maintenanceRepo.GetNonTerminalInWindow(
		ctx,
		command.VehicleID(),
		command.ScheduledAt().Add(-maintenance.ConflictWindow),
		command.ScheduledAt().Add(maintenance.ConflictWindow),
	)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("%w: %d open record(s) within 24h of %s",
			maintenance.ErrSchedulingConflict, len(conflicts), command.ScheduledAt())
	}

	record, err := maintenance.NewMaintenanceRecord(
		command.RecordID(),
		command.VehicleID(),
		command.ScheduledAt(),
		command.Type(),
		command.Notes(),
	)
	if err != nil {
		return err
	}

	if err = maintenanceRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
