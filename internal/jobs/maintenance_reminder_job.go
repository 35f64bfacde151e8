package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/maintenance"
	"fleet/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// maintenanceLister is the slice of the maintenance listing query the
// reminder needs.
type maintenanceLister interface {
	Handle(ctx context.Context, query queries.ListMaintenanceQuery) (queries.ListMaintenanceQueryPage, error)
}

// MaintenanceReminderJob periodically logs pending maintenance records due
// within the next 24 hours. Read-only; it never mutates records.
type MaintenanceReminderJob struct {
	handler maintenanceLister
	clock   clock.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMaintenanceReminderJob creates a new job for maintenance reminders.
func NewMaintenanceReminderJob(
	handler maintenanceLister,
	clk clock.Clock,
	logger *slog.Logger,
) *MaintenanceReminderJob {
	return &MaintenanceReminderJob{
		handler: handler,
		clock:   clk,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "maintenance_reminder_job"),
	}
}

// Start begins the maintenance reminder job to run every minute.
func (j *MaintenanceReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		j.remind(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Maintenance reminder job started (running every minute)")
	return nil
}

// Stop stops the maintenance reminder job.
func (j *MaintenanceReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance reminder job stopped")
}

// remind walks every page of pending records so reminders are not lost once
// the backlog outgrows a single page.
func (j *MaintenanceReminderJob) remind(ctx context.Context) {
	pending := maintenance.StatusPending
	now := j.clock.Now()
	horizon := now.Add(24 * time.Hour)

	for page := 1; ; page++ {
		query, err := queries.NewListMaintenanceQuery(nil, &pending, page, queries.MaxPageSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Maintenance reminder query is invalid", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Maintenance reminder job failed", "error", err)
			return
		}

		for _, record := range result.Items {
			scheduledAt, parseErr := time.Parse(time.RFC3339, record.ScheduledAt)
			if parseErr != nil {
				continue
			}

			if scheduledAt.Before(now) || scheduledAt.After(horizon) {
				continue
			}

			j.logger.InfoContext(ctx, "Maintenance due within 24 hours",
				"record_id", record.ID.String(),
				"vehicle_id", record.VehicleID.String(),
				"scheduled_at", record.ScheduledAt,
				"type", record.Type,
			)
		}

		if len(result.Items) < queries.MaxPageSize {
			return
		}
	}
}
