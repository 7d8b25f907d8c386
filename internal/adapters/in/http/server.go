package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	createBookingHandler  commands.CreateBookingCommandHandler
	cancelBookingHandler  commands.CancelBookingCommandHandler
	deliverBookingHandler commands.DeliverBookingCommandHandler
	createManifestHandler commands.CreateManifestCommandHandler
	loadBookingsHandler   commands.LoadBookingsCommandHandler
	departManifestHandler commands.DepartManifestCommandHandler
	unloadManifestHandler commands.UnloadManifestCommandHandler

	// Query handlers
	getActiveBookingsHandler    queries.GetActiveBookingsQueryHandler
	getIncomingManifestsHandler queries.GetIncomingManifestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createBookingHandler commands.CreateBookingCommandHandler,
	cancelBookingHandler commands.CancelBookingCommandHandler,
	deliverBookingHandler commands.DeliverBookingCommandHandler,
	createManifestHandler commands.CreateManifestCommandHandler,
	loadBookingsHandler commands.LoadBookingsCommandHandler,
	departManifestHandler commands.DepartManifestCommandHandler,
	unloadManifestHandler commands.UnloadManifestCommandHandler,
	getActiveBookingsHandler queries.GetActiveBookingsQueryHandler,
	getIncomingManifestsHandler queries.GetIncomingManifestsQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:       createCustomerHandler,
		createBookingHandler:        createBookingHandler,
		cancelBookingHandler:        cancelBookingHandler,
		deliverBookingHandler:       deliverBookingHandler,
		createManifestHandler:       createManifestHandler,
		loadBookingsHandler:         loadBookingsHandler,
		departManifestHandler:       departManifestHandler,
		unloadManifestHandler:       unloadManifestHandler,
		getActiveBookingsHandler:    getActiveBookingsHandler,
		getIncomingManifestsHandler: getIncomingManifestsHandler,
	}
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	var newCustomer servers.NewCustomer
	if err = ctx.Bind(&newCustomer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateCustomerCommand(
		actor, customerID, newCustomer.Name, newCustomer.Mobile, deref(newCustomer.Address))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:      customerID.Bytes(),
		Name:    newCustomer.Name,
		Mobile:  newCustomer.Mobile,
		Address: newCustomer.Address,
		Active:  true,
	})
}

// CreateBooking handles POST /api/v1/bookings - books a consignment and
// returns it with its allocated LR number.
func (s *Server) CreateBooking(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	var newBooking servers.NewBooking
	if err = ctx.Bind(&newBooking); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := kernel.NewBranchCode(newBooking.Origin)
	if err != nil {
		return errorResponse(ctx, err)
	}
	destination, err := kernel.NewBranchCode(newBooking.Destination)
	if err != nil {
		return errorResponse(ctx, err)
	}
	paymentMode, err := booking.PaymentModeFromString(string(newBooking.PaymentMode))
	if err != nil {
		return errorResponse(ctx, err)
	}
	customerID, err := kernel.UUIDFromBytes(newBooking.CustomerId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	articles := make([]commands.ArticleLineInput, len(newBooking.ArticleLines))
	for i, line := range newBooking.ArticleLines {
		articles[i] = commands.ArticleLineInput{
			Description: line.Description,
			Packages:    line.Packages,
			WeightKg:    line.WeightKg,
			Amount:      line.Amount,
		}
	}

	cmd, err := commands.NewCreateBookingCommand(
		actor,
		kernel.NewUUID(), customerID,
		origin, destination,
		newBooking.Consignor.Name, newBooking.Consignor.Mobile, deref(newBooking.Consignor.Address),
		newBooking.Consignee.Name, newBooking.Consignee.Mobile, deref(newBooking.Consignee.Address),
		newBooking.DestinationAddress,
		articles,
		paymentMode,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, handleErr := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Booking{
		Id:          created.ID().Bytes(),
		LrNumber:    created.LRNumber().String(),
		Origin:      created.Origin().String(),
		Destination: created.Destination().String(),
		Status:      created.Status().String(),
		TotalAmount: created.TotalAmount(),
	})
}

// GetActiveBookings handles GET /api/v1/bookings/active - lists bookings
// still in the pipeline, scoped to the caller's branch.
func (s *Server) GetActiveBookings(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	query, err := queries.NewGetActiveBookingsQuery(actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	bookings, err := s.getActiveBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve bookings")
	}

	response := make([]servers.BookingSummary, len(bookings))
	for i, b := range bookings {
		response[i] = servers.BookingSummary{
			Id:            b.ID.Bytes(),
			LrNumber:      b.LRNumber,
			Origin:        b.Origin,
			Destination:   b.Destination,
			ConsigneeName: b.ConsigneeName,
			Status:        b.Status,
			TotalPackages: b.TotalPackages,
			TotalAmount:   b.TotalAmount,
			CreatedAt:     b.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelBooking handles POST /api/v1/bookings/{bookingId}/cancel.
func (s *Server) CancelBooking(ctx echo.Context, bookingID uuid.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	id, err := kernel.UUIDFromBytes(bookingID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelBookingCommand(actor, id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.cancelBookingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverBooking handles POST /api/v1/bookings/{bookingId}/deliver.
func (s *Server) DeliverBooking(ctx echo.Context, bookingID uuid.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	id, err := kernel.UUIDFromBytes(bookingID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeliverBookingCommand(actor, id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.deliverBookingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateManifest handles POST /api/v1/manifests - opens a manifest for loading.
func (s *Server) CreateManifest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	var newManifest servers.NewManifest
	if err = ctx.Bind(&newManifest); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	origin, err := kernel.NewBranchCode(newManifest.Origin)
	if err != nil {
		return errorResponse(ctx, err)
	}
	destination, err := kernel.NewBranchCode(newManifest.Destination)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateManifestCommand(
		actor,
		kernel.NewUUID(),
		newManifest.VehicleNumber, newManifest.DriverName, newManifest.DriverPhone,
		origin, destination,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, handleErr := s.createManifestHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Manifest{
		Id:            created.ID().Bytes(),
		Number:        created.Number(),
		VehicleNumber: created.VehicleNumber(),
		Origin:        created.Origin().String(),
		Destination:   created.Destination().String(),
		Status:        created.Status().String(),
	})
}

// GetIncomingManifests handles GET /api/v1/manifests/incoming - lists
// in-transit manifests headed for the caller's branch.
func (s *Server) GetIncomingManifests(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	query, err := queries.NewGetIncomingManifestsQuery(actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	manifests, err := s.getIncomingManifestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve manifests")
	}

	response := make([]servers.IncomingManifest, len(manifests))
	for i, m := range manifests {
		response[i] = servers.IncomingManifest{
			Id:            m.ID.Bytes(),
			Number:        m.Number,
			VehicleNumber: m.VehicleNumber,
			DriverName:    m.DriverName,
			DriverPhone:   m.DriverPhone,
			Origin:        m.Origin,
			Destination:   m.Destination,
			DepartedAt:    m.DepartedAt,
			BookingCount:  m.BookingCount,
			TotalPackages: m.TotalPackages,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// LoadBookings handles POST /api/v1/manifests/{manifestId}/bookings.
func (s *Server) LoadBookings(ctx echo.Context, manifestID uuid.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	var request servers.LoadBookingsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(manifestID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	bookingIDs := make([]kernel.UUID, len(request.BookingIds))
	for i, rawID := range request.BookingIds {
		bookingID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		bookingIDs[i] = bookingID
	}

	cmd, err := commands.NewLoadBookingsCommand(actor, id, bookingIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.loadBookingsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DepartManifest handles POST /api/v1/manifests/{manifestId}/depart.
func (s *Server) DepartManifest(ctx echo.Context, manifestID uuid.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	id, err := kernel.UUIDFromBytes(manifestID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDepartManifestCommand(actor, id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.departManifestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnloadManifest handles POST /api/v1/manifests/{manifestId}/unload.
func (s *Server) UnloadManifest(ctx echo.Context, manifestID uuid.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	var request servers.UnloadManifestRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(manifestID[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	conditions := make(map[kernel.UUID]booking.Condition, len(request.Conditions))
	for _, raw := range request.Conditions {
		bookingID, idErr := kernel.UUIDFromBytes(raw.BookingId[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}

		condition, condErr := conditionFromRequest(raw)
		if condErr != nil {
			return errorResponse(ctx, condErr)
		}
		conditions[bookingID] = condition
	}

	cmd, err := commands.NewUnloadManifestCommand(actor, id, deref(request.Notes), conditions)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.unloadManifestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func conditionFromRequest(raw servers.BookingCondition) (booking.Condition, error) {
	switch raw.Condition {
	case servers.BookingConditionConditionGood:
		return booking.NewGoodCondition(), nil
	case servers.BookingConditionConditionDamaged:
		return booking.NewDamagedCondition(deref(raw.Remarks))
	case servers.BookingConditionConditionMissing:
		return booking.NewMissingCondition(), nil
	default:
		return booking.Condition{}, errs.NewValueIsInvalidError("condition")
	}
}

// errorResponse translates domain and application errors into HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrBranchOutOfScope),
		errors.Is(err, commands.ErrCustomerNotFound):
		return jsonError(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrRouteMismatch),
		errors.Is(err, commands.ErrManifestNotInTransit),
		errors.Is(err, commands.ErrConditionsDoNotMatchLoad),
		errors.Is(err, booking.ErrAlreadyManifested),
		errors.Is(err, booking.ErrNotManifested),
		errors.Is(err, booking.ErrProofOfDeliveryMissing),
		errors.Is(err, manifest.ErrNoBookingsLoaded),
		errors.Is(err, manifest.ErrBookingAlreadyLoaded),
		errors.Is(err, manifest.ErrBookingNotOnManifest):
		return jsonError(ctx, http.StatusConflict, err)
	default:
		return jsonError(ctx, http.StatusInternalServerError, err)
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
