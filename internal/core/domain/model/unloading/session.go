package unloading

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for unloading sessions.
var (
	// ErrSessionIsNotConstructed is returned when using an improperly initialized Session.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")
	// ErrNoConditionsReported is returned when an unloading call carries no
	// per-booking conditions.
	ErrNoConditionsReported = errors.New("unloading requires at least one booking condition")
)

// Session is the immutable record of one unloading call at the receiving
// branch: which manifest was received, where, when, and the aggregate tally
// of good, damaged, and missing bookings. It is written once during the
// unloading workflow and never modified afterwards.
type Session struct {
	id              kernel.UUID
	manifestID      kernel.UUID
	receivingBranch kernel.BranchCode
	itemsGood       int
	itemsDamaged    int
	itemsMissing    int
	notes           string
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewSession creates a session for one unloading call, folding the reported
// per-booking conditions into aggregate tallies. The condition batch must be
// non-empty and every condition valid.
func NewSession(
	id, manifestID kernel.UUID,
	receivingBranch kernel.BranchCode,
	notes string,
	conditions map[kernel.UUID]booking.Condition,
	createdAt time.Time,
) (*Session, error) {
	if len(conditions) == 0 {
		return nil, ErrNoConditionsReported
	}

	var good, damaged, missing int
	for bookingID, condition := range conditions {
		if err := bookingID.Validate(); err != nil {
			return nil, err
		}
		if err := condition.Validate(); err != nil {
			return nil, err
		}
		switch condition.Kind() {
		case booking.ConditionDamaged:
			damaged++
		case booking.ConditionMissing:
			missing++
		default:
			good++
		}
	}

	return newSession(id, manifestID, receivingBranch, good, damaged, missing, notes, createdAt)
}

// RestoreSession reconstructs a session from persistent storage with its
// already-computed tallies.
func RestoreSession(
	id, manifestID kernel.UUID,
	receivingBranch kernel.BranchCode,
	itemsGood, itemsDamaged, itemsMissing int,
	notes string,
	createdAt time.Time,
) (*Session, error) {
	return newSession(id, manifestID, receivingBranch,
		itemsGood, itemsDamaged, itemsMissing, notes, createdAt)
}

func newSession(
	id, manifestID kernel.UUID,
	receivingBranch kernel.BranchCode,
	itemsGood, itemsDamaged, itemsMissing int,
	notes string,
	createdAt time.Time,
) (*Session, error) {
	if err := errors.Join(
		id.Validate(),
		manifestID.Validate(),
		receivingBranch.Validate(),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return &Session{
		id:              id,
		manifestID:      manifestID,
		receivingBranch: receivingBranch,
		itemsGood:       itemsGood,
		itemsDamaged:    itemsDamaged,
		itemsMissing:    itemsMissing,
		notes:           notes,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// ManifestID returns the received manifest's identifier.
func (s *Session) ManifestID() kernel.UUID {
	return s.manifestID
}

// ReceivingBranch returns the branch that performed the unloading.
func (s *Session) ReceivingBranch() kernel.BranchCode {
	return s.receivingBranch
}

// ItemsGood returns the count of bookings received intact.
func (s *Session) ItemsGood() int {
	return s.itemsGood
}

// ItemsDamaged returns the count of bookings received damaged.
func (s *Session) ItemsDamaged() int {
	return s.itemsDamaged
}

// ItemsMissing returns the count of bookings that did not arrive.
func (s *Session) ItemsMissing() int {
	return s.itemsMissing
}

// Notes returns the operator's free-form notes for the call.
func (s *Session) Notes() string {
	return s.notes
}

// CreatedAt returns when the unloading call was recorded.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}
