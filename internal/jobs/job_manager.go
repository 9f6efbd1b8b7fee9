// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. The only job today is the blob cleanup; the
// manager exists so new jobs slot in without touching the composition root.
package jobs

import (
	"fmt"
	"log/slog"

	"pharmacy/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	blobCleanupJob *BlobCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cleanupHandler commands.CleanupOrphanedBlobsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		blobCleanupJob: NewBlobCleanupJob(cleanupHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.blobCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start blob cleanup job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.blobCleanupJob.Stop()
}
