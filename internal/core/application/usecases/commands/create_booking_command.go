package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)

	// Field sentinels name the offending field the way the wire contract
	// spells it. Validation is sequential so the caller always sees the
	// first missing field, not a joined list.
	ErrConsignorNameIsRequired      = errors.New("consignor_name is required")
	ErrConsignorMobileIsRequired    = errors.New("consignor_mobile is required")
	ErrConsignorAddressIsRequired   = errors.New("consignor_address is required")
	ErrConsigneeNameIsRequired      = errors.New("consignee_name is required")
	ErrConsigneeMobileIsRequired    = errors.New("consignee_mobile is required")
	ErrConsigneeAddressIsRequired   = errors.New("consignee_address is required")
	ErrDestinationAddressIsRequired = errors.New("destination_address is required")
	ErrOriginBranchIsRequired       = errors.New("origin_branch is required")
	ErrDestinationBranchIsRequired  = errors.New("destination_branch is required")
	ErrArticleLinesAreRequired      = errors.New("article_lines is required")
)

// ArticleLineInput is one raw article line from the booking payload,
// validated into a booking.ArticleLine by the handler.
type ArticleLineInput struct {
	Description string
	Packages    int
	WeightKg    float64
	Amount      float64
}

// CreateBookingCommand represents a request to book one consignment.
// Carries the full structured payload: the parties, the route, the article
// lines, and the payment mode. The LR number is not part of the request;
// it is allocated by the handler.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	actor              auth.Context
	bookingID          kernel.UUID
	customerID         kernel.UUID
	origin             kernel.BranchCode
	destination        kernel.BranchCode
	consignorName      string
	consignorMobile    string
	consignorAddress   string
	consigneeName      string
	consigneeMobile    string
	consigneeAddress   string
	destinationAddress string
	articles           []ArticleLineInput
	paymentMode        booking.PaymentMode

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to book a consignment.
// Required fields are checked one at a time in payload order, so the
// returned error names exactly the first missing field.
func NewCreateBookingCommand(
	actor auth.Context,
	bookingID, customerID kernel.UUID,
	origin, destination kernel.BranchCode,
	consignorName, consignorMobile, consignorAddress string,
	consigneeName, consigneeMobile, consigneeAddress string,
	destinationAddress string,
	articles []ArticleLineInput,
	paymentMode booking.PaymentMode,
) (CreateBookingCommand, error) {
	bookingCommand := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return CreateBookingCommand{}, err
	}
	if err := bookingID.Validate(); err != nil {
		return CreateBookingCommand{}, err
	}
	if err := customerID.Validate(); err != nil {
		return CreateBookingCommand{}, err
	}

	switch {
	case consignorName == "":
		return CreateBookingCommand{}, ErrConsignorNameIsRequired
	case consignorMobile == "":
		return CreateBookingCommand{}, ErrConsignorMobileIsRequired
	case consignorAddress == "":
		return CreateBookingCommand{}, ErrConsignorAddressIsRequired
	case consigneeName == "":
		return CreateBookingCommand{}, ErrConsigneeNameIsRequired
	case consigneeMobile == "":
		return CreateBookingCommand{}, ErrConsigneeMobileIsRequired
	case consigneeAddress == "":
		return CreateBookingCommand{}, ErrConsigneeAddressIsRequired
	case destinationAddress == "":
		return CreateBookingCommand{}, ErrDestinationAddressIsRequired
	}

	if err := origin.Validate(); err != nil {
		return CreateBookingCommand{}, ErrOriginBranchIsRequired
	}
	if err := destination.Validate(); err != nil {
		return CreateBookingCommand{}, ErrDestinationBranchIsRequired
	}
	if len(articles) == 0 {
		return CreateBookingCommand{}, ErrArticleLinesAreRequired
	}
	if err := paymentMode.Validate(); err != nil {
		return CreateBookingCommand{}, err
	}

	bookingCommand.actor = actor
	bookingCommand.bookingID = bookingID
	bookingCommand.customerID = customerID
	bookingCommand.origin = origin
	bookingCommand.destination = destination
	bookingCommand.consignorName = consignorName
	bookingCommand.consignorMobile = consignorMobile
	bookingCommand.consignorAddress = consignorAddress
	bookingCommand.consigneeName = consigneeName
	bookingCommand.consigneeMobile = consigneeMobile
	bookingCommand.consigneeAddress = consigneeAddress
	bookingCommand.destinationAddress = destinationAddress
	bookingCommand.articles = articles
	bookingCommand.paymentMode = paymentMode

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CreateBookingCommand) Actor() auth.Context {
	return c.actor
}

// BookingID returns the unique identifier for the new booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CustomerID returns the referenced customer's identifier.
func (c CreateBookingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Origin returns the origin branch code.
func (c CreateBookingCommand) Origin() kernel.BranchCode {
	return c.origin
}

// Destination returns the destination branch code.
func (c CreateBookingCommand) Destination() kernel.BranchCode {
	return c.destination
}

// ConsignorName returns the sender's name.
func (c CreateBookingCommand) ConsignorName() string {
	return c.consignorName
}

// ConsignorMobile returns the sender's mobile number.
func (c CreateBookingCommand) ConsignorMobile() string {
	return c.consignorMobile
}

// ConsignorAddress returns the sender's address.
func (c CreateBookingCommand) ConsignorAddress() string {
	return c.consignorAddress
}

// ConsigneeName returns the receiver's name.
func (c CreateBookingCommand) ConsigneeName() string {
	return c.consigneeName
}

// ConsigneeMobile returns the receiver's mobile number.
func (c CreateBookingCommand) ConsigneeMobile() string {
	return c.consigneeMobile
}

// ConsigneeAddress returns the receiver's address.
func (c CreateBookingCommand) ConsigneeAddress() string {
	return c.consigneeAddress
}

// DestinationAddress returns the delivery address.
func (c CreateBookingCommand) DestinationAddress() string {
	return c.destinationAddress
}

// Articles returns the raw article lines.
func (c CreateBookingCommand) Articles() []ArticleLineInput {
	return c.articles
}

// PaymentMode returns the payment mode.
func (c CreateBookingCommand) PaymentMode() booking.PaymentMode {
	return c.paymentMode
}
