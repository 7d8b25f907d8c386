package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrLoadBookingsCommandIsNotConstructed = errors.New(
		"LoadBookingsCommand must be created via NewLoadBookingsCommand constructor",
	)
	ErrBookingIDsAreRequired = errors.New("booking_ids is required")
)

// LoadBookingsCommand represents a request to attach a batch of bookings to
// a manifest before departure.
type LoadBookingsCommand struct { //nolint:recvcheck //using for validation
	actor      auth.Context
	manifestID kernel.UUID
	bookingIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewLoadBookingsCommand creates a command to load bookings onto a manifest.
// The batch must be non-empty and every identifier valid.
func NewLoadBookingsCommand(
	actor auth.Context,
	manifestID kernel.UUID,
	bookingIDs []kernel.UUID,
) (LoadBookingsCommand, error) {
	loadCommand := LoadBookingsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return LoadBookingsCommand{}, err
	}
	if err := manifestID.Validate(); err != nil {
		return LoadBookingsCommand{}, err
	}
	if len(bookingIDs) == 0 {
		return LoadBookingsCommand{}, ErrBookingIDsAreRequired
	}
	for _, id := range bookingIDs {
		if err := id.Validate(); err != nil {
			return LoadBookingsCommand{}, err
		}
	}

	loadCommand.actor = actor
	loadCommand.manifestID = manifestID
	loadCommand.bookingIDs = bookingIDs
	return loadCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadBookingsCommand) Validate() error {
	return c.guard.Validate(ErrLoadBookingsCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c LoadBookingsCommand) Actor() auth.Context {
	return c.actor
}

// ManifestID returns the target manifest's identifier.
func (c LoadBookingsCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// BookingIDs returns the identifiers of the bookings to load.
func (c LoadBookingsCommand) BookingIDs() []kernel.UUID {
	return c.bookingIDs
}
