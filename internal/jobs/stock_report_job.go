package jobs

import (
	"context"
	"log/slog"

	"granary/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockReportJob periodically logs what the storage holds.
type StockReportJob struct {
	storageHandler  queries.GetStorageQueryHandler
	describeHandler queries.DescribeStorageQueryHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

func NewStockReportJob(
	storageHandler queries.GetStorageQueryHandler,
	describeHandler queries.DescribeStorageQueryHandler,
	logger *slog.Logger,
) *StockReportJob {
	return &StockReportJob{
		storageHandler:  storageHandler,
		describeHandler: describeHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "stock_report_job"),
	}
}

// Run logs one report.
func (j *StockReportJob) Run(ctx context.Context) {
	view, err := j.storageHandler.Handle(ctx, queries.NewGetStorageQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock report failed", "error", err)
		return
	}

	report, err := j.describeHandler.Handle(ctx, queries.NewDescribeStorageQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock report failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Stock report",
		"storage_id", view.ID.String(),
		"containers", len(view.Containers),
		"free_container_slots", view.FreeContainerSlots,
		"report", report,
	)
}

func (j *StockReportJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock report job started", "schedule", schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *StockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stock report job stopped")
}
