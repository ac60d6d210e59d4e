// Package jobs provides scheduled background tasks for the escrow registry.
//
// Jobs are cron-based via github.com/robfig/cron/v3 and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(deadlineWatchJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DeadlineWatchJob runs every minute and publishes an overdue notice for each
// started delivery past its deadline. It is strictly an observer: settlement
// stays pull-based, and only the sender's explicit overtime check moves funds.
package jobs
