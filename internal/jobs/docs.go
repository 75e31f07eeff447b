// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AutoDispatchJob - Moves today's pendiente, confirmado and en_produccion
// orders to despachado once the dispatch hour has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields (seconds first). The sweep is idempotent, so the
// frequency only bounds how late an order is dispatched when nobody lists orders.
//
// # Error Handling
//
// - A missing business timezone is logged at debug level and retried on the next tick
// - Any other failure is logged as an error; the job keeps running
package jobs
