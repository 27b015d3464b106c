package jobs

import (
	"context"
	"log/slog"

	"campuseats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// JobExpiryJob manages the scheduled sweep of the job board.
// Runs every second to take expired jobs off the board and expire the orders
// no courier claimed in time.
type JobExpiryJob struct {
	handler commands.ExpireJobsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewJobExpiryJob creates a new job for sweeping expired board entries.
// Uses ExpireJobsCommandHandler to process the sweep every second.
func NewJobExpiryJob(handler commands.ExpireJobsCommandHandler, logger *slog.Logger) *JobExpiryJob {
	return &JobExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "job_expiry_job"),
	}
}

// Start begins the expiry sweep to run every second.
func (j *JobExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireJobsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Job expiry sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Job expiry sweep started (running every second)")
	return nil
}

// Stop stops the expiry sweep.
func (j *JobExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Job expiry sweep stopped")
}
