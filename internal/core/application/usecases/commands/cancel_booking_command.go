package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand represents a request to cancel a booking before its
// vehicle departs. Cancellation is a status transition; the record is kept.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Context
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a command to cancel a booking.
func NewCancelBookingCommand(actor auth.Context, bookingID kernel.UUID) (CancelBookingCommand, error) {
	cancelCommand := CancelBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return CancelBookingCommand{}, err
	}
	if err := bookingID.Validate(); err != nil {
		return CancelBookingCommand{}, err
	}

	cancelCommand.actor = actor
	cancelCommand.bookingID = bookingID
	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CancelBookingCommand) Actor() auth.Context {
	return c.actor
}

// BookingID returns the booking to cancel.
func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
