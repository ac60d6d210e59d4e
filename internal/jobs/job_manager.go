package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"deliveryescrow/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deadlineWatchJob *DeadlineWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	scanner OverdueScanner,
	publisher ports.NotificationPublisher,
	clock func() time.Time,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deadlineWatchJob: NewDeadlineWatchJob(scanner, publisher, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineWatchJob.Stop()
}
