package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/unloading"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var (
	// ErrManifestNotInTransit is returned when unloading a manifest that
	// has not departed or was already received.
	ErrManifestNotInTransit = errors.New("manifest is not in transit")
	// ErrConditionsDoNotMatchLoad is returned when the condition batch
	// does not cover exactly the bookings on the manifest.
	ErrConditionsDoNotMatchLoad = errors.New(
		"conditions must cover exactly the bookings loaded on the manifest")
)

// UnloadManifestCommandHandler drives the non-atomic unloading workflow.
// After the whole batch is validated, each step commits in its own
// transaction with a persisted saga carrying the cursor between them:
//
//  1. start the saga row (its uniqueness rejects a duplicate concurrent call)
//  2. write the immutable unloading session
//  3. write the best-effort legacy record (failure logged, never fatal)
//  4. flip the manifest to unloaded
//  5. patch each booking: received ones move to unloaded with a pending POD,
//     missing ones stay in transit with the missing marker
//
// A failure after step 2 leaves earlier steps committed; no compensation is
// attempted. The saga row keeps the full condition payload so the resume job
// can re-drive an interrupted workflow; step 5 re-runs are merge-patches and
// change nothing once applied.
type UnloadManifestCommandHandler struct {
	uowFactory UnloadingUoWFactory
	legacy     ports.LegacyRecorder
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUnloadManifestCommandHandler creates a handler for the unloading
// workflow.
func NewUnloadManifestCommandHandler(
	uowFactory UnloadingUoWFactory,
	legacy ports.LegacyRecorder,
	notifier ports.Notifier,
	logger *slog.Logger,
) UnloadManifestCommandHandler {
	return UnloadManifestCommandHandler{
		uowFactory: uowFactory,
		legacy:     legacy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle validates the unloading call, starts its saga, and runs the
// workflow to completion.
func (h *UnloadManifestCommandHandler) Handle(ctx context.Context, cmd UnloadManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.validateBatch(ctx, cmd); err != nil {
		return err
	}

	saga, err := h.startSaga(ctx, cmd)
	if err != nil {
		return err
	}

	return h.Resume(ctx, saga)
}

// Resume drives a saga from its current cursor to completion. Called both
// for fresh sagas and by the resume job for sagas interrupted by a crash.
func (h *UnloadManifestCommandHandler) Resume(ctx context.Context, saga *unloading.Saga) error {
	if err := saga.Validate(); err != nil {
		return err
	}

	for !saga.IsComplete() {
		step := saga.Step()

		var err error
		switch step {
		case unloading.StepCreateSession:
			err = h.runCreateSession(ctx, saga)
		case unloading.StepLegacyRecord:
			err = h.runLegacyRecord(ctx, saga)
		case unloading.StepFlipManifest:
			err = h.runFlipManifest(ctx, saga)
		case unloading.StepPatchBookings:
			err = h.runPatchBookings(ctx, saga)
		case unloading.StepDone:
			err = h.finish(ctx, saga)
		default:
			err = step.Validate()
		}
		if err != nil {
			if step == unloading.StepCreateSession {
				return err
			}
			return errs.NewWorkflowStepError(step.String(), err)
		}
	}

	return nil
}

// validateBatch checks the whole unloading call before any write: the
// manifest must be in transit, visible to the caller, and the condition
// batch must cover exactly its loading records.
func (h *UnloadManifestCommandHandler) validateBatch(ctx context.Context, cmd UnloadManifestCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trip, err := uow.ManifestRepository().Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}
	if err = ensureBranchScope(cmd.Actor(), trip.Destination()); err != nil {
		return err
	}
	if trip.Status() != manifest.StatusInTransit {
		return ErrManifestNotInTransit
	}

	if len(cmd.Conditions()) != len(trip.LoadingRecords()) {
		return ErrConditionsDoNotMatchLoad
	}
	for bookingID := range cmd.Conditions() {
		if !trip.Carries(bookingID) {
			return ErrConditionsDoNotMatchLoad
		}
	}

	return nil
}

// startSaga persists the saga row in its own transaction. The row's
// uniqueness per incomplete manifest serializes duplicate invocations.
func (h *UnloadManifestCommandHandler) startSaga(
	ctx context.Context,
	cmd UnloadManifestCommand,
) (*unloading.Saga, error) {
	saga, err := unloading.NewSaga(
		kernel.NewUUID(), cmd.ManifestID(), cmd.Actor().Branch(),
		cmd.Notes(), cmd.Conditions(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UnloadingRepository().AddSaga(ctx, saga); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saga, nil
}

func (h *UnloadManifestCommandHandler) runCreateSession(ctx context.Context, saga *unloading.Saga) error {
	session, err := unloading.NewSession(
		kernel.NewUUID(), saga.ManifestID(), saga.ReceivingBranch(),
		saga.Notes(), saga.Conditions(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UnloadingRepository().AddSession(ctx, session); err != nil {
		return err
	}
	if err = h.advance(ctx, uow, saga); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// runLegacyRecord mirrors the session into the legacy records table. The
// whole step is best effort: a failed session read or write is logged and
// the cursor still advances.
func (h *UnloadManifestCommandHandler) runLegacyRecord(ctx context.Context, saga *unloading.Saga) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session, err := uow.UnloadingRepository().GetSessionByManifest(ctx, saga.ManifestID())
	if err != nil {
		h.logger.Warn("legacy unloading record skipped, session read failed",
			"manifest_id", saga.ManifestID().String(),
			"error", err)
	} else if legacyErr := h.legacy.RecordUnloading(ctx, session); legacyErr != nil {
		h.logger.Warn("legacy unloading record write failed",
			"manifest_id", saga.ManifestID().String(),
			"error", legacyErr)
	}

	if err = h.advance(ctx, uow, saga); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UnloadManifestCommandHandler) runFlipManifest(ctx context.Context, saga *unloading.Saga) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manifestRepo := uow.ManifestRepository()
	trip, err := manifestRepo.Get(ctx, saga.ManifestID())
	if err != nil {
		return err
	}
	if err = trip.MarkUnloaded(time.Now().UTC()); err != nil {
		return err
	}
	if err = manifestRepo.Update(ctx, trip); err != nil {
		return err
	}

	if err = h.advance(ctx, uow, saga); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// runPatchBookings applies the condition outcome to each booking in its own
// transaction. Already-patched bookings are skipped, so a resumed run picks
// up exactly where the interrupted one stopped.
func (h *UnloadManifestCommandHandler) runPatchBookings(ctx context.Context, saga *unloading.Saga) error {
	now := time.Now().UTC()
	for bookingID, condition := range saga.Conditions() {
		if err := h.patchBooking(ctx, bookingID, condition, now); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.advance(ctx, uow, saga); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UnloadManifestCommandHandler) patchBooking(
	ctx context.Context,
	bookingID kernel.UUID,
	condition booking.Condition,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, bookingID)
	if err != nil {
		return err
	}

	if condition.IsMissing() {
		if err = aggregate.MarkMissingAtUnload(); err != nil {
			return err
		}
	} else {
		if aggregate.Status() == booking.StatusUnloaded {
			// already patched by an interrupted run
			return nil
		}
		pod, podErr := booking.NewProofOfDelivery(condition, "", now)
		if podErr != nil {
			return podErr
		}
		if err = aggregate.MarkUnloaded(pod); err != nil {
			return err
		}
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// finish closes the saga and announces the outcome. Notification failures
// never surface; the workflow is already durable at this point.
func (h *UnloadManifestCommandHandler) finish(ctx context.Context, saga *unloading.Saga) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := saga.Complete(time.Now().UTC()); err != nil {
		return err
	}

	unloadingRepo := uow.UnloadingRepository()
	if err := unloadingRepo.UpdateSaga(ctx, saga); err != nil {
		return err
	}

	session, err := unloadingRepo.GetSessionByManifest(ctx, saga.ManifestID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyManifestUnloaded(ctx, session)
	return nil
}

func (h *UnloadManifestCommandHandler) advance(
	ctx context.Context,
	uow UnloadingUoW,
	saga *unloading.Saga,
) error {
	if err := saga.Advance(); err != nil {
		return err
	}
	return uow.UnloadingRepository().UpdateSaga(ctx, saga)
}
