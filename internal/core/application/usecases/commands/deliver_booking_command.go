package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeliverBookingCommandIsNotConstructed = errors.New(
	"DeliverBookingCommand must be created via NewDeliverBookingCommand constructor",
)

// DeliverBookingCommand represents a request to hand an unloaded booking
// over to its consignee, resolving the pending proof of delivery.
type DeliverBookingCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Context
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverBookingCommand creates a command to deliver a booking.
func NewDeliverBookingCommand(actor auth.Context, bookingID kernel.UUID) (DeliverBookingCommand, error) {
	deliverCommand := DeliverBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return DeliverBookingCommand{}, err
	}
	if err := bookingID.Validate(); err != nil {
		return DeliverBookingCommand{}, err
	}

	deliverCommand.actor = actor
	deliverCommand.bookingID = bookingID
	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeliverBookingCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c DeliverBookingCommand) Actor() auth.Context {
	return c.actor
}

// BookingID returns the booking to deliver.
func (c DeliverBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
