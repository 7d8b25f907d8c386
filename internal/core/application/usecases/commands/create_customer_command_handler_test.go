package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(
		operatorAt(t, "HYD"), kernel.NewUUID(), "Sri Traders", "9000000001", "12 Market Rd")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_DuplicateMobile(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(
		operatorAt(t, "HYD"), kernel.NewUUID(), "Sri Traders", "9000000001", "")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
			Return(errs.NewObjectAlreadyExistsError("mobile", "9000000001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestCreateCustomerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCustomerCommand{} // not constructed properly

	factory := new(MockCustomerUoWFactory)
	handler := commands.NewCreateCustomerCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
