package commands

import (
	"context"

	"fleet/internal/pkg/clock"
)

// TransitionMaintenanceCommandHandler moves a maintenance record through its
// state machine. The record row is locked for update so concurrent
// transitions of the same record serialize; the aggregate rejects moves out
// of terminal states and any step the machine does not allow. Completing a
// record stamps performedAt with the injected clock.
type TransitionMaintenanceCommandHandler struct {
	uowFactory MaintenanceUoWFactory
	clock      clock.Clock
}

// NewTransitionMaintenanceCommandHandler creates a handler for maintenance state transitions.
func NewTransitionMaintenanceCommandHandler(
	uowFactory MaintenanceUoWFactory,
	clk clock.Clock,
) TransitionMaintenanceCommandHandler {
	return TransitionMaintenanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the maintenance transition command.
func (h TransitionMaintenanceCommandHandler) Handle(ctx context.Context, command TransitionMaintenanceCommand) error {
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

	maintenanceRepo := uow.MaintenanceRepository()

	record, err := maintenanceRepo.GetForUpdate(ctx, command.RecordID())
	if err != nil {
		return err
	}

	if err = record.TransitionTo(command.Target(), h.clock.Now()); err != nil {
		return err
	}

	if err = maintenanceRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
