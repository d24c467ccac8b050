package jobs

import (
	"context"
	"log/slog"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultQueueSchedule drains the order queue every fifteen seconds.
const DefaultQueueSchedule = "*/15 * * * * *"

// OrderQueueJob periodically drains the background order queue. The drain
// handler serializes itself with a process-local lock, so a tick that fires
// while the previous drain is still running skips without logging an error.
type OrderQueueJob struct {
	handler  *commands.ProcessOrderQueueCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderQueueJob creates a job that drains the order queue on the given
// cron schedule (with seconds field).
func NewOrderQueueJob(
	handler *commands.ProcessOrderQueueCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderQueueJob {
	if schedule == "" {
		schedule = DefaultQueueSchedule
	}

	return &OrderQueueJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_queue_job"),
	}
}

// Start begins the scheduled queue drain.
func (j *OrderQueueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewProcessOrderQueueCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order queue drain failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order queue job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled queue drain.
func (j *OrderQueueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order queue job stopped")
}
