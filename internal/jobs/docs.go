// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SnapshotAutosaveJob - writes the in-memory state to the snapshot store on a schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(saveSnapshotHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field, so
// "0 */5 * * * *" runs at second zero of every fifth minute.
//
// # Error Handling
//
// - A process started without a snapshot store skips autosaves silently
// - Any other save failure is logged; the next tick tries again
// - Failed job starts are reported by StartAll
package jobs
