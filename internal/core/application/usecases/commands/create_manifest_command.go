package commands

import (
	"errors"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateManifestCommandIsNotConstructed = errors.New(
		"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
	)
	ErrVehicleNumberIsRequired = errors.New("vehicle_number is required")
	ErrDriverNameIsRequired    = errors.New("driver_name is required")
	ErrDriverPhoneIsRequired   = errors.New("driver_phone is required")
)

// CreateManifestCommand represents a request to open a new vehicle trip
// between two branches. Bookings are attached afterwards by the loading
// workflow.
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	actor         auth.Context
	manifestID    kernel.UUID
	vehicleNumber string
	driverName    string
	driverPhone   string
	origin        kernel.BranchCode
	destination   kernel.BranchCode

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a command to open a trip.
func NewCreateManifestCommand(
	actor auth.Context,
	manifestID kernel.UUID,
	vehicleNumber, driverName, driverPhone string,
	origin, destination kernel.BranchCode,
) (CreateManifestCommand, error) {
	manifestCommand := CreateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		manifestCommand.setActor(actor),
		manifestCommand.setManifestID(manifestID),
		manifestCommand.setVehicleNumber(vehicleNumber),
		manifestCommand.setDriver(driverName, driverPhone),
		manifestCommand.setRoute(origin, destination),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return manifestCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CreateManifestCommand) Actor() auth.Context {
	return c.actor
}

// ManifestID returns the unique identifier for the new manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// VehicleNumber returns the vehicle registration number.
func (c CreateManifestCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// DriverName returns the driver's name.
func (c CreateManifestCommand) DriverName() string {
	return c.driverName
}

// DriverPhone returns the driver's contact number.
func (c CreateManifestCommand) DriverPhone() string {
	return c.driverPhone
}

// Origin returns the origin branch code.
func (c CreateManifestCommand) Origin() kernel.BranchCode {
	return c.origin
}

// Destination returns the destination branch code.
func (c CreateManifestCommand) Destination() kernel.BranchCode {
	return c.destination
}

func (c *CreateManifestCommand) setActor(actor auth.Context) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateManifestCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *CreateManifestCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}

	c.vehicleNumber = vehicleNumber
	return nil
}

func (c *CreateManifestCommand) setDriver(name, phone string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}
	if phone == "" {
		return ErrDriverPhoneIsRequired
	}

	c.driverName = name
	c.driverPhone = phone
	return nil
}

func (c *CreateManifestCommand) setRoute(origin, destination kernel.BranchCode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}

	c.origin = origin
	c.destination = destination
	return nil
}
