package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueScanner lists started deliveries whose deadline has passed.
// The delivery repository satisfies it.
type OverdueScanner interface {
	GetAllStartedPastDeadline(ctx context.Context, now time.Time) ([]*delivery.Delivery, error)
}

// DeadlineWatchJob periodically scans for overdue deliveries and broadcasts
// an overdue notice for each. It never mutates state or moves funds: the
// notice tells the sender an overtime check would settle in their favor, and
// the decision to run one stays with the sender.
type DeadlineWatchJob struct {
	scanner   OverdueScanner
	publisher ports.NotificationPublisher
	clock     func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDeadlineWatchJob creates a job that watches delivery deadlines.
func NewDeadlineWatchJob(
	scanner OverdueScanner,
	publisher ports.NotificationPublisher,
	clock func() time.Time,
	logger *slog.Logger,
) *DeadlineWatchJob {
	return &DeadlineWatchJob{
		scanner:   scanner,
		publisher: publisher,
		clock:     clock,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "deadline_watch_job"),
	}
}

// Start begins the deadline watch, scanning once per minute.
func (j *DeadlineWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline watch job started (running every minute)")
	return nil
}

// Run performs one scan. Exported so tests and operators can trigger a scan
// without waiting for the schedule.
func (j *DeadlineWatchJob) Run(ctx context.Context) {
	now := j.clock()

	overdue, err := j.scanner.GetAllStartedPastDeadline(ctx, now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline scan failed", "error", err)
		return
	}

	for _, d := range overdue {
		notice := delivery.OverdueNoticeEvent{
			Hash:     d.Hash().String(),
			Deadline: d.Deadline(),
		}
		if err = j.publisher.Publish(ctx, notice); err != nil {
			j.logger.ErrorContext(ctx, "Overdue notice publish failed",
				"hash", d.Hash().String(), "error", err)
		}
	}

	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Deadline scan found overdue deliveries", "count", len(overdue))
	}
}

// Stop stops the deadline watch job.
func (j *DeadlineWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline watch job stopped")
}
