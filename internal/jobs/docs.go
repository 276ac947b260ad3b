// Package jobs provides scheduled background tasks for the granary service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with a leading seconds field.
//
// # Available Jobs
//
// 1. StockReportJob - logs the storage report together with slot usage
// 2. EmptyContainerSweepJob - removes containers that hold nothing, freeing their slots
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{
//		StockReport: "0 * * * * *",
//	}, stockReportJob, sweepJob, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// A job with an empty schedule is not started. An invalid schedule fails
// StartAll and stops the jobs that were already started.
package jobs
