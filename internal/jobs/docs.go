// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. ShippingAssignmentJob - Runs on a configurable schedule to decide all pending orders in one batch
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignShippingHandler, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses a six-field cron expression with a seconds column.
// The default "0 * * * * *" runs one batch at the top of every minute; each
// run takes a fresh snapshot of pending orders and carrier catalogs.
//
// # Error Handling
//
// - Assignment job ignores expected business scenarios (no pending orders, no carriers)
// - Configuration errors such as an unranked carrier are logged on every run until fixed
// - Failed job starts will stop any already running jobs
package jobs
