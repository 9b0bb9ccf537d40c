// Package jobs provides scheduled background tasks for the order tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueWatchJob - Periodically scans for active orders past their
// deadline and logs them. The scan is read-only; orders are never mutated.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, "*/5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The overdue watch uses a standard five-field cron expression taken from
// configuration; the default runs every five minutes.
package jobs
