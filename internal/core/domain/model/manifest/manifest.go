package manifest

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for manifest operations.
var (
	// ErrManifestIsNotConstructed is returned when using an improperly initialized Manifest.
	ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest constructor")
	// ErrBookingAlreadyLoaded is returned when attaching a booking that is
	// already on this manifest.
	ErrBookingAlreadyLoaded = errors.New("booking is already loaded on this manifest")
	// ErrNoBookingsLoaded is returned when departing an empty manifest.
	ErrNoBookingsLoaded = errors.New("manifest has no bookings loaded")
	// ErrBookingNotOnManifest is returned when an operation references a
	// booking that has no loading record on this manifest.
	ErrBookingNotOnManifest = errors.New("booking is not loaded on this manifest")
)

// Manifest represents one vehicle trip (OGPL) carrying a batch of bookings
// from an origin branch to a destination branch. It is the aggregate root
// owning the trip's loading records.
//
// Manifest follows these invariants:
//   - Must carry a valid unique identifier and a human-readable number
//   - Vehicle, driver, and route are fixed at creation
//   - Bookings can only be attached while the manifest is in created status
//   - A manifest departs only with at least one booking on board
//   - Status transitions follow the forward-only state machine in Status;
//     the unloaded transition is performed by the unloading workflow only
//     after an unloading session exists for the trip
type Manifest struct {
	id             kernel.UUID
	number         string
	vehicleNumber  string
	driverName     string
	driverPhone    string
	origin         kernel.BranchCode
	destination    kernel.BranchCode
	status         Status
	loadingRecords []*LoadingRecord
	createdAt      time.Time
	departedAt     *time.Time
	unloadedAt     *time.Time

	guard guard.ConstructorGuard
}

// NewManifest creates a Manifest in created status with no bookings.
func NewManifest(
	id kernel.UUID,
	number, vehicleNumber, driverName, driverPhone string,
	origin, destination kernel.BranchCode,
	createdAt time.Time,
) (*Manifest, error) {
	m := &Manifest{
		status: StatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setVehicleNumber(vehicleNumber),
		m.setDriver(driverName, driverPhone),
		m.setRoute(origin, destination),
		m.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a Manifest aggregate from persistent storage,
// including its status, loading records, and timestamps.
func RestoreManifest(
	id kernel.UUID,
	number, vehicleNumber, driverName, driverPhone string,
	origin, destination kernel.BranchCode,
	status Status,
	loadingRecords []*LoadingRecord,
	createdAt time.Time,
	departedAt, unloadedAt *time.Time,
) (*Manifest, error) {
	m := &Manifest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setVehicleNumber(vehicleNumber),
		m.setDriver(driverName, driverPhone),
		m.setRoute(origin, destination),
		m.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, r := range loadingRecords {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	m.status = status
	m.loadingRecords = loadingRecords
	m.departedAt = departedAt
	m.unloadedAt = unloadedAt
	return m, nil
}

// Validate ensures the Manifest instance was properly constructed.
func (m *Manifest) Validate() error {
	if m == nil {
		return ErrManifestIsNotConstructed
	}
	return m.guard.Validate(ErrManifestIsNotConstructed)
}

// ID returns the manifest's unique identifier.
func (m *Manifest) ID() kernel.UUID {
	return m.id
}

// Number returns the human-readable manifest number.
func (m *Manifest) Number() string {
	return m.number
}

// VehicleNumber returns the vehicle registration number.
func (m *Manifest) VehicleNumber() string {
	return m.vehicleNumber
}

// DriverName returns the driver's name.
func (m *Manifest) DriverName() string {
	return m.driverName
}

// DriverPhone returns the driver's contact number.
func (m *Manifest) DriverPhone() string {
	return m.driverPhone
}

// Origin returns the origin branch code.
func (m *Manifest) Origin() kernel.BranchCode {
	return m.origin
}

// Destination returns the destination branch code.
func (m *Manifest) Destination() kernel.BranchCode {
	return m.destination
}

// Status returns the current lifecycle status.
func (m *Manifest) Status() Status {
	return m.status
}

// LoadingRecords returns the manifest's booking links.
func (m *Manifest) LoadingRecords() []*LoadingRecord {
	return m.loadingRecords
}

// CreatedAt returns the manifest creation time.
func (m *Manifest) CreatedAt() time.Time {
	return m.createdAt
}

// DepartedAt returns the departure time, or nil before departure.
func (m *Manifest) DepartedAt() *time.Time {
	return m.departedAt
}

// UnloadedAt returns the receipt time, or nil before unloading.
func (m *Manifest) UnloadedAt() *time.Time {
	return m.unloadedAt
}

// Carries reports whether the given booking has a loading record on this manifest.
func (m *Manifest) Carries(bookingID kernel.UUID) bool {
	for _, r := range m.loadingRecords {
		if r.BookingID().IsEqual(bookingID) {
			return true
		}
	}
	return false
}

// AddBooking attaches a booking to the manifest. Only allowed while the
// manifest is in created status; a booking can be attached once.
func (m *Manifest) AddBooking(bookingID kernel.UUID, loadedAt time.Time) error {
	if m.status != StatusCreated {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to load bookings", m.status),
		)
	}
	if m.Carries(bookingID) {
		return ErrBookingAlreadyLoaded
	}

	record, err := NewLoadingRecord(bookingID, loadedAt)
	if err != nil {
		return err
	}

	m.loadingRecords = append(m.loadingRecords, record)
	return nil
}

// Depart moves the manifest to in_transit. An empty manifest never departs.
func (m *Manifest) Depart(departedAt time.Time) error {
	if len(m.loadingRecords) == 0 {
		return ErrNoBookingsLoaded
	}

	status, err := m.status.Depart()
	if err != nil {
		return err
	}

	m.status = status
	m.departedAt = &departedAt
	return nil
}

// MarkUnloaded moves the manifest to unloaded. Called by the unloading
// workflow after the unloading session has been committed; the session is
// the precondition, this transition is its consequence.
func (m *Manifest) MarkUnloaded(unloadedAt time.Time) error {
	status, err := m.status.Unload()
	if err != nil {
		return err
	}

	m.status = status
	m.unloadedAt = &unloadedAt
	return nil
}

// Complete moves the manifest to its terminal completed status.
func (m *Manifest) Complete() error {
	status, err := m.status.Complete()
	if err != nil {
		return err
	}

	m.status = status
	return nil
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("manifest number")
	}
	m.number = number
	return nil
}

func (m *Manifest) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	m.vehicleNumber = vehicleNumber
	return nil
}

func (m *Manifest) setDriver(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("driver phone")
	}
	m.driverName = name
	m.driverPhone = phone
	return nil
}

func (m *Manifest) setRoute(origin, destination kernel.BranchCode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destination branch",
			fmt.Errorf("origin and destination must differ, both are %s", origin),
		)
	}
	m.origin = origin
	m.destination = destination
	return nil
}

func (m *Manifest) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	m.createdAt = createdAt
	return nil
}
