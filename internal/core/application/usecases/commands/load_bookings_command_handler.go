package commands

import (
	"context"
	"errors"
	"time"
)

// ErrRouteMismatch is returned when a booking's route differs from the
// manifest's route. A trip carries only consignments travelling its own leg.
var ErrRouteMismatch = errors.New("booking route does not match the manifest route")

// LoadBookingsCommandHandler handles the business logic for loading bookings
// onto a manifest. The whole batch loads or none of it does: any rejected
// booking rolls back the transaction.
type LoadBookingsCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewLoadBookingsCommandHandler creates a handler for the loading workflow.
func NewLoadBookingsCommandHandler(uowFactory ManifestUoWFactory) LoadBookingsCommandHandler {
	return LoadBookingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the loading command. Each booking must be in booked
// status, travel the manifest's route, and not sit on another active
// manifest; accepted bookings move to loading status.
func (h *LoadBookingsCommandHandler) Handle(ctx context.Context, cmd LoadBookingsCommand) error {
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

	manifestRepo := uow.ManifestRepository()
	bookingRepo := uow.BookingRepository()

	trip, err := manifestRepo.Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}
	if err = ensureBranchScope(cmd.Actor(), trip.Origin()); err != nil {
		return err
	}

	batch, err := bookingRepo.GetAllByIDs(ctx, cmd.BookingIDs())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range batch {
		if !aggregate.Origin().IsEqual(trip.Origin()) ||
			!aggregate.Destination().IsEqual(trip.Destination()) {
			return ErrRouteMismatch
		}
		if err = aggregate.AssignToManifest(trip.ID()); err != nil {
			return err
		}
		if err = trip.AddBooking(aggregate.ID(), now); err != nil {
			return err
		}
		if err = bookingRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = manifestRepo.Update(ctx, trip); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
