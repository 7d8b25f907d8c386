package jobs

import (
	"fmt"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unloadingResumeJob *UnloadingResumeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unloading dependencies to wire up saga resumption.
func NewJobManager(
	uowFactory commands.UnloadingUoWFactory,
	unloadHandler commands.UnloadManifestCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unloadingResumeJob: NewUnloadingResumeJob(uowFactory, unloadHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unloadingResumeJob.Start(); err != nil {
		return fmt.Errorf("failed to start unloading resume job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unloadingResumeJob.Stop()
}
