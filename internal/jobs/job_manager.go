package jobs

import (
	"fmt"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/pkg/clock"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAllocationJob     *OrderAllocationJob
	maintenanceReminderJob *MaintenanceReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	allocateOrderHandler commands.AllocateOrderCommandHandler,
	listMaintenanceHandler queries.ListMaintenanceQueryHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAllocationJob:     NewOrderAllocationJob(allocateOrderHandler, logger),
		maintenanceReminderJob: NewMaintenanceReminderJob(listMaintenanceHandler, clk, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAllocationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order allocation job: %w", err)
	}

	if err := jm.maintenanceReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderAllocationJob.Stop()
		return fmt.Errorf("failed to start maintenance reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.maintenanceReminderJob.Stop()
	jm.orderAllocationJob.Stop()
}
