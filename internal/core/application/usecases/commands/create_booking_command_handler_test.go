package commands_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "Sri Traders", "9000000001", "", time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		operatorAt(t, "HYD"),
		kernel.NewUUID(), customerID,
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
		"Sri Traders", "9000000001", "12 Market Rd",
		"Kumar & Co", "9000000002", "4 Industrial Area",
		"4 Industrial Area, Bengaluru",
		[]commands.ArticleLineInput{{Description: "machine spares", Packages: 4, WeightKg: 120.5, Amount: 1800}},
		booking.PaymentToPay,
	)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	bookingRepo := new(MockBookingRepository)
	allocator := new(MockLRAllocator)
	uow := new(MockUoW)

	year := time.Now().UTC().Year()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(activeCustomer(t, customerID), nil).Once(),
		uow.On("LRAllocator").Return(allocator).Once(),
		allocator.On("NextSequence", ctx, cmd.Origin(), cmd.Destination(), year).Return(7, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusBooked, created.Status())
	assert.Equal(t, fmt.Sprintf("HYD-BLR-%d-00007", year), created.LRNumber().String())
	bookingRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	allocator.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		operatorAt(t, "HYD"),
		kernel.NewUUID(), customerID,
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
		"Sri Traders", "9000000001", "12 Market Rd",
		"Kumar & Co", "9000000002", "4 Industrial Area",
		"4 Industrial Area, Bengaluru",
		[]commands.ArticleLineInput{{Description: "spares", Packages: 1, WeightKg: 10, Amount: 100}},
		booking.PaymentPaid,
	)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer_id", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCustomerNotFound)
	require.EqualError(t, err, "Customer not found")
}

func TestCreateBookingCommandHandler_Handle_InactiveCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	inactive, err := customer.RestoreCustomer(
		customerID, "Sri Traders", "9000000001", "", false, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCreateBookingCommand(
		operatorAt(t, "HYD"),
		kernel.NewUUID(), customerID,
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
		"Sri Traders", "9000000001", "12 Market Rd",
		"Kumar & Co", "9000000002", "4 Industrial Area",
		"4 Industrial Area, Bengaluru",
		[]commands.ArticleLineInput{{Description: "spares", Packages: 1, WeightKg: 10, Amount: 100}},
		booking.PaymentPaid,
	)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(inactive, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCustomerNotFound)
}

func TestCreateBookingCommandHandler_Handle_OutOfScopeBranch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBookingCommand(
		operatorAt(t, "MAA"), // caller sits at neither end of the route
		kernel.NewUUID(), kernel.NewUUID(),
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
		"Sri Traders", "9000000001", "12 Market Rd",
		"Kumar & Co", "9000000002", "4 Industrial Area",
		"4 Industrial Area, Bengaluru",
		[]commands.ArticleLineInput{{Description: "spares", Packages: 1, WeightKg: 10, Amount: 100}},
		booking.PaymentPaid,
	)
	require.NoError(t, err)

	factory := new(MockBookingUoWFactory)
	handler := commands.NewCreateBookingCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrBranchOutOfScope)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBookingCommandHandler_Handle_AdminBypassesScope(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		adminAt(t, "MAA"),
		kernel.NewUUID(), customerID,
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
		"Sri Traders", "9000000001", "12 Market Rd",
		"Kumar & Co", "9000000002", "4 Industrial Area",
		"4 Industrial Area, Bengaluru",
		[]commands.ArticleLineInput{{Description: "spares", Packages: 1, WeightKg: 10, Amount: 100}},
		booking.PaymentPaid,
	)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	bookingRepo := new(MockBookingRepository)
	allocator := new(MockLRAllocator)
	uow := new(MockUoW)

	year := time.Now().UTC().Year()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(activeCustomer(t, customerID), nil).Once(),
		uow.On("LRAllocator").Return(allocator).Once(),
		allocator.On("NextSequence", ctx, cmd.Origin(), cmd.Destination(), year).Return(1, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestCreateBookingCommandHandler_Handle_AllocatorError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		operatorAt(t, "HYD"),
		kernel.NewUUID(), customerID,
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
		"Sri Traders", "9000000001", "12 Market Rd",
		"Kumar & Co", "9000000002", "4 Industrial Area",
		"4 Industrial Area, Bengaluru",
		[]commands.ArticleLineInput{{Description: "spares", Packages: 1, WeightKg: 10, Amount: 100}},
		booking.PaymentPaid,
	)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	allocator := new(MockLRAllocator)
	uow := new(MockUoW)

	year := time.Now().UTC().Year()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).Return(activeCustomer(t, customerID), nil).Once(),
		uow.On("LRAllocator").Return(allocator).Once(),
		allocator.On("NextSequence", ctx, cmd.Origin(), cmd.Destination(), year).
			Return(0, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateBookingCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}
