package jobs

import (
	"fmt"
	"log/slog"

	"github.com/M-o-m-e-n/restaurant-ordering-system/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderQueueJob *OrderQueueJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processQueueHandler *commands.ProcessOrderQueueCommandHandler,
	queueSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderQueueJob: NewOrderQueueJob(processQueueHandler, queueSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderQueueJob.Start(); err != nil {
		return fmt.Errorf("failed to start order queue job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderQueueJob.Stop()
}
