package jobs

import (
	"context"
	"log/slog"

	"granary/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EmptyContainerSweepJob periodically removes empty containers.
type EmptyContainerSweepJob struct {
	handler commands.SweepEmptyContainersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewEmptyContainerSweepJob(
	handler commands.SweepEmptyContainersCommandHandler,
	logger *slog.Logger,
) *EmptyContainerSweepJob {
	return &EmptyContainerSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "empty_container_sweep_job"),
	}
}

// Run performs one sweep. Sweeps that find nothing are logged at debug level.
func (j *EmptyContainerSweepJob) Run(ctx context.Context) {
	removed, err := j.handler.Handle(ctx, commands.NewSweepEmptyContainersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Empty container sweep failed", "error", err)
		return
	}

	if len(removed) == 0 {
		j.logger.DebugContext(ctx, "No empty containers to sweep")
		return
	}

	kinds := make([]string, len(removed))
	for i, kind := range removed {
		kinds[i] = kind.String()
	}
	j.logger.InfoContext(ctx, "Empty containers removed", "kinds", kinds)
}

func (j *EmptyContainerSweepJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Empty container sweep job started", "schedule", schedule)
	return nil
}

func (j *EmptyContainerSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Empty container sweep job stopped")
}
