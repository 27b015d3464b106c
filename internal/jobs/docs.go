// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the coordination workflow.
//
// # Available Jobs
//
// 1. JobExpiryJob - Runs every second to sweep expired jobs off the board
// and expire the orders no courier claimed in time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireJobsHandler, logger)
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
// The sweep uses the cron expression "* * * * * *" which means it runs every
// second. Expiry is also enforced lazily at claim time, so the sweep's only
// responsibility is moving unclaimed orders to their terminal status promptly.
//
// # Error Handling
//
// - An empty sweep is a successful run, not an error
// - Sweep failures are logged and retried on the next tick
package jobs
