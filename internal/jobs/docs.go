// Package jobs provides scheduled background tasks for the fleet system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fleet service.
//
// # Available Jobs
//
// 1. OrderAllocationJob - Runs every five seconds to allocate created orders to manned vehicles
// 2. MaintenanceReminderJob - Runs every minute to log pending maintenance due within 24 hours
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(allocateOrderHandler, listMaintenanceHandler, clk, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Allocation job ignores expected business errors (no orders, no manned vehicles)
// - Reminder job logs query failures and skips records it cannot parse
// - Failed job starts will stop any already running jobs
package jobs
