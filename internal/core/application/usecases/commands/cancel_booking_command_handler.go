package commands

import (
	"context"
)

// CancelBookingCommandHandler handles the business logic for booking
// cancellation. Only bookings that have not departed can be cancelled.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(uowFactory BookingUoWFactory) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	aggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}
	if err = ensureBranchScope(cmd.Actor(), aggregate.Origin()); err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
