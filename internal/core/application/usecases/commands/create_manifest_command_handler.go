package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/manifest"
)

// CreateManifestCommandHandler handles the business logic for opening a
// vehicle trip. The manifest number is derived from the trip's id so it is
// unique without drawing from a counter.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCreateManifestCommandHandler creates a handler for manifest creation.
func NewCreateManifestCommandHandler(uowFactory ManifestUoWFactory) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manifest creation command and returns the created
// manifest.
func (h *CreateManifestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateManifestCommand,
) (*manifest.Manifest, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := ensureBranchScope(cmd.Actor(), cmd.Origin()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	number := manifestNumber(cmd, now)

	aggregate, err := manifest.NewManifest(
		cmd.ManifestID(), number,
		cmd.VehicleNumber(), cmd.DriverName(), cmd.DriverPhone(),
		cmd.Origin(), cmd.Destination(), now,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ManifestRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func manifestNumber(cmd CreateManifestCommand, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(cmd.ManifestID().String(), "-", "")[:8])
	return fmt.Sprintf("OGPL-%s-%s-%d-%s", cmd.Origin(), cmd.Destination(), now.Year(), short)
}
