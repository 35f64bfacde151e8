package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAllocationJob manages the scheduled allocation of orders to vehicles.
// Runs every five seconds to match created orders with manned vehicles that
// can carry their weight.
type OrderAllocationJob struct {
	handler commands.AllocateOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAllocationJob creates a new job for allocating orders.
// Uses AllocateOrderCommandHandler to process order allocations.
func NewOrderAllocationJob(handler commands.AllocateOrderCommandHandler, logger *slog.Logger) *OrderAllocationJob {
	return &OrderAllocationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_allocation_job"),
	}
}

// Start begins the order allocation job to run every five seconds.
func (j *OrderAllocationJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAllocateOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoMannedVehiclesFound) {
				j.logger.ErrorContext(ctx, "Order allocation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order allocation job started (running every five seconds)")
	return nil
}

// Stop stops the order allocation job.
func (j *OrderAllocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order allocation job stopped")
}
