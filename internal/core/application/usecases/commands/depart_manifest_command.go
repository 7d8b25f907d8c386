package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDepartManifestCommandIsNotConstructed = errors.New(
	"DepartManifestCommand must be created via NewDepartManifestCommand constructor",
)

// DepartManifestCommand represents a request to dispatch a loaded manifest.
type DepartManifestCommand struct { //nolint:recvcheck //using for validation
	actor      auth.Context
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDepartManifestCommand creates a command to dispatch a manifest.
func NewDepartManifestCommand(
	actor auth.Context,
	manifestID kernel.UUID,
) (DepartManifestCommand, error) {
	departCommand := DepartManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return DepartManifestCommand{}, err
	}
	if err := manifestID.Validate(); err != nil {
		return DepartManifestCommand{}, err
	}

	departCommand.actor = actor
	departCommand.manifestID = manifestID
	return departCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DepartManifestCommand) Validate() error {
	return c.guard.Validate(ErrDepartManifestCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c DepartManifestCommand) Actor() auth.Context {
	return c.actor
}

// ManifestID returns the departing manifest's identifier.
func (c DepartManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}
