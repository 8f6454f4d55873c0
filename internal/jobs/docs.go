// Package jobs provides scheduled background tasks for the housebuilder service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. HouseConstructionJob - Runs every second to build every queued house order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(finishHousesHandler, jobs.EverySecond, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds first. The default "* * * * * *"
// runs every second; overlapping ticks are skipped.
//
// # Error Handling
//
// A failed tick is logged and the next tick retries; the failed transaction
// leaves the queue untouched.
package jobs
