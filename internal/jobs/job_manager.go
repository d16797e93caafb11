package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotAutosaveJob *SnapshotAutosaveJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	saveSnapshotHandler commands.SaveSnapshotCommandHandler,
	autosaveSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotAutosaveJob: NewSnapshotAutosaveJob(saveSnapshotHandler, autosaveSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotAutosaveJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot autosave job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotAutosaveJob.Stop()
}
