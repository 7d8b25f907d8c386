package unloading

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for unloading sagas.
var (
	// ErrSagaIsNotConstructed is returned when using an improperly initialized Saga.
	ErrSagaIsNotConstructed = errors.New("Saga must be created via NewSaga constructor")
	// ErrSagaAlreadyComplete is returned when advancing or completing a
	// finished saga.
	ErrSagaAlreadyComplete = errors.New("unloading saga is already complete")
)

// Step is the saga's cursor over the unloading workflow. The cursor names
// the next step to execute; it advances only after the previous step's
// transaction committed, so a resumed saga never repeats a committed step
// other than the booking patch, which is idempotent.
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	StepUnknown Step = iota

	// StepCreateSession writes the immutable unloading session.
	StepCreateSession

	// StepLegacyRecord writes the best-effort legacy unloading record.
	// Failure here is logged and the cursor advances anyway.
	StepLegacyRecord

	// StepFlipManifest moves the manifest to unloaded.
	StepFlipManifest

	// StepPatchBookings applies the per-booking condition outcomes, one
	// transaction per booking. Safe to re-run.
	StepPatchBookings

	// StepDone means every step committed; the saga awaits completion.
	StepDone
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:       "unknown",
		StepCreateSession: "create_session",
		StepLegacyRecord:  "legacy_record",
		StepFlipManifest:  "flip_manifest",
		StepPatchBookings: "patch_bookings",
		StepDone:          "done",
	}
}

func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // StepUnknown is intentionally excluded as it's invalid
	return map[Step]string{
		StepCreateSession: "create_session",
		StepLegacyRecord:  "legacy_record",
		StepFlipManifest:  "flip_manifest",
		StepPatchBookings: "patch_bookings",
		StepDone:          "done",
	}
}

// Validate checks if the Step value is one of the defined workflow steps.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the persisted name of the step.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StepFromString parses a step from its persisted representation.
func StepFromString(str string) (Step, error) {
	for step, s := range getValidStepStrings() {
		if s == str {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause(
		"step", fmt.Errorf("%q is not a valid step", str))
}

// Saga is the durable progress record of one unloading call. The workflow is
// deliberately non-atomic: each step commits in its own transaction, and a
// crash between steps leaves the saga row behind with its cursor and the
// full condition payload, so the resume job can re-drive it to completion.
//
// At most one incomplete saga exists per manifest; a second concurrent
// unloading call for the same manifest fails on that uniqueness.
type Saga struct {
	id              kernel.UUID
	manifestID      kernel.UUID
	receivingBranch kernel.BranchCode
	notes           string
	conditions      map[kernel.UUID]booking.Condition
	step            Step
	startedAt       time.Time
	completedAt     *time.Time

	guard guard.ConstructorGuard
}

// NewSaga starts a saga with its cursor on the first step. The condition
// payload is captured whole so a resume needs nothing from the original
// request.
func NewSaga(
	id, manifestID kernel.UUID,
	receivingBranch kernel.BranchCode,
	notes string,
	conditions map[kernel.UUID]booking.Condition,
	startedAt time.Time,
) (*Saga, error) {
	if len(conditions) == 0 {
		return nil, ErrNoConditionsReported
	}
	for bookingID, condition := range conditions {
		if err := bookingID.Validate(); err != nil {
			return nil, err
		}
		if err := condition.Validate(); err != nil {
			return nil, err
		}
	}

	return restoreSaga(id, manifestID, receivingBranch, notes, conditions,
		StepCreateSession, startedAt, nil)
}

// RestoreSaga reconstructs a saga from persistent storage at its saved cursor.
func RestoreSaga(
	id, manifestID kernel.UUID,
	receivingBranch kernel.BranchCode,
	notes string,
	conditions map[kernel.UUID]booking.Condition,
	step Step,
	startedAt time.Time,
	completedAt *time.Time,
) (*Saga, error) {
	if err := step.Validate(); err != nil {
		return nil, err
	}
	return restoreSaga(id, manifestID, receivingBranch, notes, conditions,
		step, startedAt, completedAt)
}

func restoreSaga(
	id, manifestID kernel.UUID,
	receivingBranch kernel.BranchCode,
	notes string,
	conditions map[kernel.UUID]booking.Condition,
	step Step,
	startedAt time.Time,
	completedAt *time.Time,
) (*Saga, error) {
	if err := errors.Join(
		id.Validate(),
		manifestID.Validate(),
		receivingBranch.Validate(),
	); err != nil {
		return nil, err
	}
	if startedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("started at")
	}

	return &Saga{
		id:              id,
		manifestID:      manifestID,
		receivingBranch: receivingBranch,
		notes:           notes,
		conditions:      conditions,
		step:            step,
		startedAt:       startedAt,
		completedAt:     completedAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Saga instance was properly constructed.
func (s *Saga) Validate() error {
	if s == nil {
		return ErrSagaIsNotConstructed
	}
	return s.guard.Validate(ErrSagaIsNotConstructed)
}

// ID returns the saga's unique identifier.
func (s *Saga) ID() kernel.UUID {
	return s.id
}

// ManifestID returns the manifest being unloaded.
func (s *Saga) ManifestID() kernel.UUID {
	return s.manifestID
}

// ReceivingBranch returns the branch performing the unloading.
func (s *Saga) ReceivingBranch() kernel.BranchCode {
	return s.receivingBranch
}

// Notes returns the operator's notes captured with the call.
func (s *Saga) Notes() string {
	return s.notes
}

// Conditions returns the captured per-booking condition payload.
func (s *Saga) Conditions() map[kernel.UUID]booking.Condition {
	return s.conditions
}

// Step returns the next step to execute.
func (s *Saga) Step() Step {
	return s.step
}

// StartedAt returns when the unloading call began.
func (s *Saga) StartedAt() time.Time {
	return s.startedAt
}

// CompletedAt returns when the saga finished, or nil while incomplete.
func (s *Saga) CompletedAt() *time.Time {
	return s.completedAt
}

// IsComplete reports whether every step committed and the saga was closed.
func (s *Saga) IsComplete() bool {
	return s.completedAt != nil
}

// Advance moves the cursor past the current step. Call it only after the
// step's transaction committed.
func (s *Saga) Advance() error {
	if s.IsComplete() || s.step == StepDone {
		return ErrSagaAlreadyComplete
	}
	s.step++
	return nil
}

// Complete closes the saga. Only a saga whose cursor reached the final step
// can be completed.
func (s *Saga) Complete(completedAt time.Time) error {
	if s.IsComplete() {
		return ErrSagaAlreadyComplete
	}
	if s.step != StepDone {
		return errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%s is not a valid step to complete the saga", s.step),
		)
	}
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completed at")
	}
	s.completedAt = &completedAt
	return nil
}
