package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	trip := createdManifest(t)
	loaded := bookedBooking(t, "HYD", "BLR", 1)
	require.NoError(t, loaded.AssignToManifest(trip.ID()))
	require.NoError(t, trip.AddBooking(loaded.ID(), time.Now().UTC()))

	cmd, err := commands.NewDepartManifestCommand(operatorAt(t, "HYD"), trip.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	manifestRepo.On("Get", ctx, trip.ID()).Return(trip, nil).Once()
	bookingRepo.On("GetAllByManifest", ctx, trip.ID()).Return([]*booking.Booking{loaded}, nil).Once()
	bookingRepo.On("Update", ctx, loaded).Return(nil).Once()
	manifestRepo.On("Update", ctx, trip).Return(nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDepartManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, manifest.StatusInTransit, trip.Status())
	assert.Equal(t, booking.StatusInTransit, loaded.Status())
	require.NotNil(t, trip.DepartedAt())
}

func TestDepartManifestCommandHandler_Handle_EmptyManifest(t *testing.T) {
	ctx := t.Context()
	trip := createdManifest(t)

	cmd, err := commands.NewDepartManifestCommand(operatorAt(t, "HYD"), trip.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	manifestRepo.On("Get", ctx, trip.ID()).Return(trip, nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDepartManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, manifest.ErrNoBookingsLoaded)
	assert.Equal(t, manifest.StatusCreated, trip.Status())
}

func TestDepartManifestCommandHandler_Handle_OutOfScope(t *testing.T) {
	ctx := t.Context()
	trip := createdManifest(t)
	loaded := bookedBooking(t, "HYD", "BLR", 1)
	require.NoError(t, trip.AddBooking(loaded.ID(), time.Now().UTC()))

	cmd, err := commands.NewDepartManifestCommand(operatorAt(t, "BLR"), trip.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	manifestRepo.On("Get", ctx, trip.ID()).Return(trip, nil).Once()

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDepartManifestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrBranchOutOfScope)
}
