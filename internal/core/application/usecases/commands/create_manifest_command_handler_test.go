package commands_test

import (
	"fmt"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateManifestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateManifestCommand(
		operatorAt(t, "HYD"), kernel.NewUUID(),
		"TS09UB1234", "Ravi Kumar", "9000000003",
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
	)
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("Add", ctx, mock.AnythingOfType("*manifest.Manifest")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManifestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateManifestCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, manifest.StatusCreated, created.Status())
	assert.Empty(t, created.LoadingRecords())
	prefix := fmt.Sprintf("OGPL-HYD-BLR-%d-", time.Now().UTC().Year())
	assert.Contains(t, created.Number(), prefix)
	manifestRepo.AssertExpectations(t)
}

func TestCreateManifestCommandHandler_Handle_OutOfScopeOrigin(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateManifestCommand(
		operatorAt(t, "BLR"), kernel.NewUUID(),
		"TS09UB1234", "Ravi Kumar", "9000000003",
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
	)
	require.NoError(t, err)

	factory := new(MockManifestUoWFactory)
	handler := commands.NewCreateManifestCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrBranchOutOfScope)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateManifestCommand_MissingVehicle(t *testing.T) {
	_, err := commands.NewCreateManifestCommand(
		operatorAt(t, "HYD"), kernel.NewUUID(),
		"", "Ravi Kumar", "9000000003",
		mustBranch(t, "HYD"), mustBranch(t, "BLR"),
	)
	require.ErrorIs(t, err, commands.ErrVehicleNumberIsRequired)
}
