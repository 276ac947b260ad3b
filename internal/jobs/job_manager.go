package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expression of every job. An empty expression
// disables the job.
type Schedules struct {
	StockReport         string
	EmptyContainerSweep string
}

type scheduledJob interface {
	Start(schedule string) error
	Stop()
}

type managedJob struct {
	name     string
	schedule string
	job      scheduledJob
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []managedJob
	started []managedJob
	logger  *slog.Logger
}

func NewJobManager(
	schedules Schedules,
	stockReportJob *StockReportJob,
	sweepJob *EmptyContainerSweepJob,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []managedJob{
			{name: "stock report", schedule: schedules.StockReport, job: stockReportJob},
			{name: "empty container sweep", schedule: schedules.EmptyContainerSweep, job: sweepJob},
		},
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts every job that has a schedule.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if j.schedule == "" {
			jm.logger.Info("Job disabled", "job", j.name)
			continue
		}

		if err := j.job.Start(j.schedule); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j)
	}

	return nil
}

// StopAll stops the started jobs, waiting for running executions to finish.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
