package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// resumeGracePeriod keeps the job away from sagas a live synchronous call
// may still be driving. Only sagas older than this are swept; a fresh saga
// whose caller crashed is picked up on a later tick.
const resumeGracePeriod = 2 * time.Minute

// UnloadingResumeJob re-drives unloading sagas that were interrupted before
// completion. Runs every minute and walks each abandoned saga from its
// persisted cursor to the end of the workflow. Sagas started within the
// grace period are skipped so the job never races the call that opened them.
type UnloadingResumeJob struct {
	uowFactory commands.UnloadingUoWFactory
	handler    commands.UnloadManifestCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewUnloadingResumeJob creates a job that resumes interrupted unloading
// workflows. Uses UnloadManifestCommandHandler to drive each saga.
func NewUnloadingResumeJob(
	uowFactory commands.UnloadingUoWFactory,
	handler commands.UnloadManifestCommandHandler,
	logger *slog.Logger,
) *UnloadingResumeJob {
	return &UnloadingResumeJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "unloading_resume_job"),
	}
}

// Start begins the resume job, running at the top of every minute.
func (j *UnloadingResumeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Unloading resume job started (running every minute)")
	return nil
}

// Stop stops the resume job.
func (j *UnloadingResumeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unloading resume job stopped")
}

func (j *UnloadingResumeJob) run() {
	ctx := context.Background()

	cutoff := time.Now().UTC().Add(-resumeGracePeriod)

	uow := j.uowFactory.Create()
	sagas, err := uow.UnloadingRepository().GetIncompleteSagasStartedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load incomplete unloading sagas", "error", err)
		return
	}

	for _, saga := range sagas {
		if resumeErr := j.handler.Resume(ctx, saga); resumeErr != nil {
			// The saga stays incomplete and is retried on the next tick.
			j.logger.ErrorContext(ctx, "Unloading saga resume failed",
				"saga_id", saga.ID(),
				"manifest_id", saga.ManifestID(),
				"step", saga.Step().String(),
				"error", resumeErr)
		}
	}
}
