// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the freight service.
//
// # Available Jobs
//
// 1. UnloadingResumeJob - Runs every minute to re-drive unloading sagas
// interrupted before completion (a crash mid-workflow leaves the saga row
// with its cursor parked on the failed step). Sagas younger than a grace
// period are skipped so the job never contends with a synchronous call
// still driving its own fresh saga.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uowFactory, unloadHandler, logger)
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
// The resume job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Unloading is an operator-driven workflow; a
// one-minute resume lag after a crash is acceptable.
//
// # Error Handling
//
// Each saga resumes independently. A saga that fails again stays incomplete
// and is retried on the next tick; the failure is logged but never stops the
// sweep over the remaining sagas.
package jobs
