package manifest

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrLoadingRecordIsNotConstructed is returned when a LoadingRecord was not
// created through NewLoadingRecord.
var ErrLoadingRecordIsNotConstructed = errors.New(
	"LoadingRecord must be created via NewLoadingRecord constructor")

// LoadingRecord links one booking to the manifest carrying it. Records are
// owned by the manifest aggregate; order between records is irrelevant.
// A record is immutable once created.
type LoadingRecord struct {
	id        kernel.UUID
	bookingID kernel.UUID
	loadedAt  time.Time

	guard kernel.ConstructorGuard
}

// NewLoadingRecord creates a link between the owning manifest and a booking.
func NewLoadingRecord(bookingID kernel.UUID, loadedAt time.Time) (*LoadingRecord, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}
	if loadedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("loaded at")
	}

	return &LoadingRecord{
		id:        kernel.NewUUID(),
		bookingID: bookingID,
		loadedAt:  loadedAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreLoadingRecord reconstructs a loading record from persistence.
func RestoreLoadingRecord(id, bookingID kernel.UUID, loadedAt time.Time) (*LoadingRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	return &LoadingRecord{
		id:        id,
		bookingID: bookingID,
		loadedAt:  loadedAt,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *LoadingRecord) Validate() error {
	if r == nil {
		return ErrLoadingRecordIsNotConstructed
	}
	return r.guard.Validate(ErrLoadingRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *LoadingRecord) ID() kernel.UUID {
	return r.id
}

// BookingID returns the linked booking's identifier.
func (r *LoadingRecord) BookingID() kernel.UUID {
	return r.bookingID
}

// LoadedAt returns when the booking was attached to the manifest.
func (r *LoadingRecord) LoadedAt() time.Time {
	return r.loadedAt
}
