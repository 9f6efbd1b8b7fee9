package jobs

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// orphanAge is how long a blob may stay unreferenced before the cleanup job
// reclaims it. Uploads always precede the catalog write that references
// them, so anything older than this without a reference is garbage.
const orphanAge = 24 * time.Hour

// BlobCleanupJob reclaims blobs that no catalog record references. Blob
// writes happen outside the unit of work, so a failed catalog transaction can
// leave an orphan behind; this job is the backstop.
type BlobCleanupJob struct {
	handler commands.CleanupOrphanedBlobsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBlobCleanupJob creates a new job for reclaiming orphaned blobs.
func NewBlobCleanupJob(handler commands.CleanupOrphanedBlobsCommandHandler, logger *slog.Logger) *BlobCleanupJob {
	return &BlobCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "blob_cleanup_job"),
	}
}

// Start schedules the cleanup to run daily at 03:00.
func (j *BlobCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupOrphanedBlobsCommand(time.Now().UTC().Add(-orphanAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Blob cleanup job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Blob cleanup job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Reclaimed orphaned blobs", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Blob cleanup job started (running daily at 03:00)")
	return nil
}

// Stop stops the cleanup job.
func (j *BlobCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Blob cleanup job stopped")
}
