package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"
)

var (
	ErrNoOrderFound          = errors.New("no order found")
	ErrNoMannedVehiclesFound = errors.New("no manned vehicles found")
)

// AllocateOrderCommandHandler places pending orders on vehicles.
// Picks the first order in Created status and hands it to OrderAllocator,
// which selects the first active manned vehicle whose capacity covers the
// order weight. Order and allocation run in a single transaction.
//
// Example:
//
//	handler := NewAllocateOrderCommandHandler(uowFactory)
//	cmd := NewAllocateOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoMannedVehiclesFound):
//	    log.Println("No vehicles with drivers")
//	case err != nil:
//	    log.Printf("Allocation failed: %v", err)
//	}
type AllocateOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewAllocateOrderCommandHandler creates a handler for order allocation operations.
func NewAllocateOrderCommandHandler(uowFactory AllocationUoWFactory) AllocateOrderCommandHandler {
	return AllocateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order allocation command.
// Returns ErrNoOrderFound when nothing waits for allocation and
// ErrNoMannedVehiclesFound when no vehicle has a driver bound.
func (h AllocateOrderCommandHandler) Handle(ctx context.Context, command AllocateOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	orderEntity, err := orderRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	vehicles, err := vehicleRepo.GetAllManned(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		return ErrNoMannedVehiclesFound
	}

	if _, err = services.NewOrderAllocator().Allocate(orderEntity, vehicles); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
