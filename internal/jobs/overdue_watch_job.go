package jobs

import (
	"context"
	"log/slog"

	"fabtrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob periodically scans for active orders that missed their
// deadline and logs them for the operations dashboard. The job never mutates
// order state; overdue is a reporting concern, not a lifecycle transition.
type OverdueWatchJob struct {
	handler  queries.GetOverdueOrdersQueryHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewOverdueWatchJob creates the overdue scan job. The schedule is a
// standard five-field cron expression; the default configuration runs the
// scan every five minutes.
func NewOverdueWatchJob(
	handler queries.GetOverdueOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "overdue_watch_job"),
	}
}

// Start begins the periodic overdue scan.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query := queries.NewGetOverdueOrdersQuery()

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue order scan failed", "error", err)
			return
		}

		if len(overdue) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Orders past deadline", "count", len(overdue))
		for _, row := range overdue {
			j.logger.WarnContext(ctx, "Overdue order",
				"orderId", row.ID,
				"customer", row.CustomerName,
				"product", row.ProductName,
				"deadline", row.Deadline,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue scan job.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}
