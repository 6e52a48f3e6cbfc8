// Package jobs provides scheduled background tasks for the tour dispatch service.
//
// Jobs use github.com/robfig/cron/v3 and run outside the tour engine: they only
// call application commands.
//
// # Available Jobs
//
// 1. StopPlanPurgeJob - deletes stop plans older than STOP_PLAN_RETENTION_DAYS
// on the STOP_PLAN_PURGE_CRON schedule. It is disabled when no schedule is set.
//
// # Usage
//
//	purge, err := jobs.NewStopPlanPurgeJob(handler, "@daily", 90, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(purge)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
