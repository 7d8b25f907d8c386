package commands

import (
	"context"
)

// DeliverBookingCommandHandler handles the business logic for handing a
// booking over to its consignee. Delivery happens at the destination
// branch, so scope is checked against the booking's destination.
type DeliverBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewDeliverBookingCommandHandler creates a handler for booking delivery.
func NewDeliverBookingCommandHandler(uowFactory BookingUoWFactory) DeliverBookingCommandHandler {
	return DeliverBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command.
func (h *DeliverBookingCommandHandler) Handle(ctx context.Context, cmd DeliverBookingCommand) error {
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
	if err = ensureBranchScope(cmd.Actor(), aggregate.Destination()); err != nil {
		return err
	}

	if err = aggregate.ConfirmDelivery(); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
