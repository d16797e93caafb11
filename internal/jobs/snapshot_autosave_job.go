package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAutosaveSchedule saves every five minutes. Schedules use the
// six-field cron syntax with seconds.
const DefaultAutosaveSchedule = "0 */5 * * * *"

// SnapshotAutosaveJob periodically writes the in-memory state to the
// snapshot store so a crash loses at most one interval of work.
type SnapshotAutosaveJob struct {
	handler  commands.SaveSnapshotCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotAutosaveJob creates the job; an empty schedule means DefaultAutosaveSchedule.
func NewSnapshotAutosaveJob(
	handler commands.SaveSnapshotCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SnapshotAutosaveJob {
	if schedule == "" {
		schedule = DefaultAutosaveSchedule
	}
	return &SnapshotAutosaveJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_autosave_job"),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *SnapshotAutosaveJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot autosave job started", "schedule", j.schedule)
	return nil
}

// Run performs one save. A process without a snapshot store is not an error.
func (j *SnapshotAutosaveJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewSaveSnapshotCommand()); err != nil {
		if errors.Is(err, commands.ErrNoSnapshotStore) {
			return
		}
		j.logger.ErrorContext(ctx, "Snapshot autosave failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running save to finish.
func (j *SnapshotAutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot autosave job stopped")
}
