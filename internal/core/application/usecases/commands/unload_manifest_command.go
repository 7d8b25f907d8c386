package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrUnloadManifestCommandIsNotConstructed = errors.New(
		"UnloadManifestCommand must be created via NewUnloadManifestCommand constructor",
	)
	ErrConditionsAreRequired = errors.New("conditions is required")
)

// UnloadManifestCommand represents one unloading call: the receiving branch
// reports the observed condition of every booking on an arrived manifest.
type UnloadManifestCommand struct { //nolint:recvcheck //using for validation
	actor      auth.Context
	manifestID kernel.UUID
	notes      string
	conditions map[kernel.UUID]booking.Condition

	guard guard.ConstructorGuard
}

// NewUnloadManifestCommand creates a command to unload a manifest. The
// condition batch must be non-empty and every condition well formed; a
// damaged condition without remarks is rejected here, before any write.
func NewUnloadManifestCommand(
	actor auth.Context,
	manifestID kernel.UUID,
	notes string,
	conditions map[kernel.UUID]booking.Condition,
) (UnloadManifestCommand, error) {
	unloadCommand := UnloadManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := actor.Validate(); err != nil {
		return UnloadManifestCommand{}, err
	}
	if err := manifestID.Validate(); err != nil {
		return UnloadManifestCommand{}, err
	}
	if len(conditions) == 0 {
		return UnloadManifestCommand{}, ErrConditionsAreRequired
	}
	for bookingID, condition := range conditions {
		if err := bookingID.Validate(); err != nil {
			return UnloadManifestCommand{}, err
		}
		if err := condition.Validate(); err != nil {
			return UnloadManifestCommand{}, err
		}
	}

	unloadCommand.actor = actor
	unloadCommand.manifestID = manifestID
	unloadCommand.notes = notes
	unloadCommand.conditions = conditions
	return unloadCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadManifestCommand) Validate() error {
	return c.guard.Validate(ErrUnloadManifestCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c UnloadManifestCommand) Actor() auth.Context {
	return c.actor
}

// ManifestID returns the manifest being unloaded.
func (c UnloadManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// Notes returns the operator's free-form notes.
func (c UnloadManifestCommand) Notes() string {
	return c.notes
}

// Conditions returns the per-booking condition batch.
func (c UnloadManifestCommand) Conditions() map[kernel.UUID]booking.Condition {
	return c.conditions
}
