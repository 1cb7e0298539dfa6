// Package jobs provides scheduled background tasks for the kitchen system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order lifecycle management.
//
// # Available Jobs
//
// 1. PriorityEscalationJob - Runs every minute to raise the priority of orders
// that have waited at their current level past the escalation timeout
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(escalatePrioritiesHandler, logger)
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
// The escalation job uses the cron expression "0 * * * * *", running at the
// top of every minute. Escalation timeouts are defined in whole minutes, so
// a tighter schedule would only repeat the same sweep.
//
// # Error Handling
//
// - Escalation failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
