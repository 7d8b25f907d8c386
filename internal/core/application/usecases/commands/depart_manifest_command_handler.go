package commands

import (
	"context"
	"time"
)

// DepartManifestCommandHandler handles the business logic for dispatching a
// manifest. The manifest and every booking on it flip to in_transit in one
// transaction, keeping the cross-aggregate invariant that a booking is in
// transit only while its manifest is.
type DepartManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewDepartManifestCommandHandler creates a handler for manifest dispatch.
func NewDepartManifestCommandHandler(uowFactory ManifestUoWFactory) DepartManifestCommandHandler {
	return DepartManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
func (h *DepartManifestCommandHandler) Handle(ctx context.Context, cmd DepartManifestCommand) error {
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

	if err = trip.Depart(time.Now().UTC()); err != nil {
		return err
	}

	batch, err := bookingRepo.GetAllByManifest(ctx, trip.ID())
	if err != nil {
		return err
	}
	for _, aggregate := range batch {
		if err = aggregate.MarkInTransit(); err != nil {
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
