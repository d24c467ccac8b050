// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the ordering service.
//
// # Available Jobs
//
// 1. OrderQueueJob - Periodically drains the background order queue,
// placing each deferred submission through the order workflow.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processQueueHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The queue job schedule is configurable; the default "*/15 * * * * *" runs
// every fifteen seconds. The drain handler holds a process-local lock, so an
// overlapping tick skips instead of double-draining.
package jobs
