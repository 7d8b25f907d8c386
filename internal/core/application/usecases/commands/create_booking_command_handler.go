package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/pkg/errs"
)

// ErrCustomerNotFound is returned when the referenced customer id does not
// resolve to an active customer. An inactive customer is indistinguishable
// from an absent one on purpose.
var ErrCustomerNotFound = errors.New("Customer not found")

// CreateBookingCommandHandler handles the business logic for booking a
// consignment. Allocating the LR number and inserting the booking happen in
// one transaction: a rolled-back booking returns its sequence number to the
// counter, so committed numbers are gapless within a scope.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
// Requires a BookingUoWFactory for transactional persistence.
func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking creation command and returns the created
// booking, including its freshly allocated LR number.
func (h *CreateBookingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateBookingCommand,
) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ensureBranchScope(cmd.Actor(), cmd.Origin()); err != nil {
		return nil, err
	}

	consignor, err := booking.NewParty(
		cmd.ConsignorName(), cmd.ConsignorMobile(), cmd.ConsignorAddress())
	if err != nil {
		return nil, err
	}
	consignee, err := booking.NewParty(
		cmd.ConsigneeName(), cmd.ConsigneeMobile(), cmd.ConsigneeAddress())
	if err != nil {
		return nil, err
	}

	articles := make([]booking.ArticleLine, 0, len(cmd.Articles()))
	for _, line := range cmd.Articles() {
		article, lineErr := booking.NewArticleLine(
			line.Description, line.Packages, line.WeightKg, line.Amount)
		if lineErr != nil {
			return nil, lineErr
		}
		articles = append(articles, article)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	resolved, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if !resolved.IsActive() {
		return nil, ErrCustomerNotFound
	}

	now := time.Now().UTC()
	seq, err := uow.LRAllocator().NextSequence(ctx, cmd.Origin(), cmd.Destination(), now.Year())
	if err != nil {
		return nil, err
	}

	lrNumber, err := booking.NewLRNumber(cmd.Origin(), cmd.Destination(), now.Year(), seq)
	if err != nil {
		return nil, err
	}

	aggregate, err := booking.NewBooking(
		cmd.BookingID(), lrNumber, resolved.ID(),
		cmd.Origin(), cmd.Destination(),
		consignor, consignee, cmd.DestinationAddress(),
		articles, cmd.PaymentMode(), now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.BookingRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
