package booking

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for booking operations.
var (
	// ErrBookingIsNotConstructed is returned when using an improperly initialized Booking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
	// ErrArticlesAreRequired is returned when a booking carries no article lines.
	ErrArticlesAreRequired = errs.NewValueIsRequiredError("articles")
	// ErrAlreadyManifested is returned when attaching a booking that is
	// already linked to an active manifest.
	ErrAlreadyManifested = errors.New("booking is already linked to an active manifest")
	// ErrNotManifested is returned when transiting a booking that has no manifest link.
	ErrNotManifested = errors.New("booking is not linked to a manifest")
	// ErrProofOfDeliveryMissing is returned when confirming delivery of a
	// booking that has no POD block.
	ErrProofOfDeliveryMissing = errors.New("booking has no proof of delivery to confirm")
)

// UnloadingStatus is the receipt marker a booking carries after an unloading
// call processed it. It distinguishes a booking reported missing at receipt
// from one that was simply never received.
type UnloadingStatus int

const (
	// UnloadingNone means no unloading call has flagged this booking.
	UnloadingNone UnloadingStatus = iota

	// UnloadingMissing means an unloading call reported the booking as not
	// arrived; the booking stays in transit but carries this marker.
	UnloadingMissing
)

// String returns the wire-visible name of the unloading status marker.
func (u UnloadingStatus) String() string {
	if u == UnloadingMissing {
		return "missing"
	}
	return "none"
}

// Booking represents one consignment travelling from an origin branch to a
// destination branch. It is the aggregate root that manages the consignment
// lifecycle from creation through loading, transit, and receipt to delivery.
//
// Booking follows these invariants:
//   - Must carry a valid unique identifier and an allocated LR number
//   - Origin and destination are distinct branch codes
//   - Carries at least one article line
//   - Status transitions follow the forward-only state machine in Status
//   - Is linked to at most one active manifest at a time
//   - Is never deleted: cancellation is a status transition
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Transition methods merge in
// status-specific payloads (e.g. the POD block on unloading) without
// touching unrelated fields.
type Booking struct {
	id                 kernel.UUID
	lrNumber           LRNumber
	customerID         kernel.UUID
	origin             kernel.BranchCode
	destination        kernel.BranchCode
	consignor          Party
	consignee          Party
	destinationAddress string
	articles           []ArticleLine
	paymentMode        PaymentMode
	totalAmount        float64
	status             Status
	pod                *ProofOfDelivery
	unloadingStatus    UnloadingStatus
	// manifestID links the booking to the manifest currently (or last)
	// carrying it; nil until the loading workflow attaches it.
	manifestID *kernel.UUID
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewBooking creates a Booking in booked status with an already-allocated LR
// number. Allocation and construction happen inside the same creation
// transaction, so no LR number is ever issued without a committed booking.
//
// The total amount is computed from the article lines; quotation-mode
// bookings carry a zero total until priced outside the engine.
func NewBooking(
	id kernel.UUID,
	lrNumber LRNumber,
	customerID kernel.UUID,
	origin, destination kernel.BranchCode,
	consignor, consignee Party,
	destinationAddress string,
	articles []ArticleLine,
	paymentMode PaymentMode,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		status: StatusBooked,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLRNumber(lrNumber),
		b.setCustomerID(customerID),
		b.setRoute(origin, destination),
		b.setConsignor(consignor),
		b.setConsignee(consignee),
		b.setDestinationAddress(destinationAddress),
		b.setArticles(articles),
		b.setPaymentMode(paymentMode),
		b.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	b.totalAmount = computeTotal(articles, paymentMode)
	return b, nil
}

// RestoreBooking reconstructs a Booking aggregate from persistent storage.
// Unlike NewBooking it accepts the full persisted state, including the
// lifecycle status, POD block, unloading marker, and manifest link.
func RestoreBooking(
	id kernel.UUID,
	lrNumber LRNumber,
	customerID kernel.UUID,
	origin, destination kernel.BranchCode,
	consignor, consignee Party,
	destinationAddress string,
	articles []ArticleLine,
	paymentMode PaymentMode,
	totalAmount float64,
	status Status,
	pod *ProofOfDelivery,
	unloadingStatus UnloadingStatus,
	manifestID *kernel.UUID,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLRNumber(lrNumber),
		b.setCustomerID(customerID),
		b.setRoute(origin, destination),
		b.setConsignor(consignor),
		b.setConsignee(consignee),
		b.setDestinationAddress(destinationAddress),
		b.setArticles(articles),
		b.setPaymentMode(paymentMode),
		b.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if manifestID != nil {
		if err := manifestID.Validate(); err != nil {
			return nil, err
		}
	}

	b.totalAmount = totalAmount
	b.status = status
	b.pod = pod
	b.unloadingStatus = unloadingStatus
	b.manifestID = manifestID
	return b, nil
}

// Validate ensures the Booking instance was properly constructed.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// LRNumber returns the booking's Lorry-Receipt document number.
func (b *Booking) LRNumber() LRNumber {
	return b.lrNumber
}

// CustomerID returns the id of the customer the booking was made for.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// Origin returns the origin branch code.
func (b *Booking) Origin() kernel.BranchCode {
	return b.origin
}

// Destination returns the destination branch code.
func (b *Booking) Destination() kernel.BranchCode {
	return b.destination
}

// Consignor returns the sender party snapshot.
func (b *Booking) Consignor() Party {
	return b.consignor
}

// Consignee returns the receiver party snapshot.
func (b *Booking) Consignee() Party {
	return b.consignee
}

// DestinationAddress returns the delivery address.
func (b *Booking) DestinationAddress() string {
	return b.destinationAddress
}

// Articles returns the booking's article lines.
func (b *Booking) Articles() []ArticleLine {
	return b.articles
}

// PaymentMode returns how the freight charge is settled.
func (b *Booking) PaymentMode() PaymentMode {
	return b.paymentMode
}

// TotalAmount returns the computed freight total.
func (b *Booking) TotalAmount() float64 {
	return b.totalAmount
}

// TotalPackages returns the package count summed over all article lines.
func (b *Booking) TotalPackages() int {
	var total int
	for _, a := range b.articles {
		total += a.Packages()
	}
	return total
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// ProofOfDelivery returns the POD block, or nil before unloading.
func (b *Booking) ProofOfDelivery() *ProofOfDelivery {
	return b.pod
}

// UnloadingStatus returns the receipt marker.
func (b *Booking) UnloadingStatus() UnloadingStatus {
	return b.unloadingStatus
}

// ManifestID returns the id of the manifest carrying (or last carrying)
// the booking, or nil if it was never loaded.
func (b *Booking) ManifestID() *kernel.UUID {
	return b.manifestID
}

// CreatedAt returns the booking creation time.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// HasActiveManifest reports whether the booking is currently linked to a
// live manifest. The link stays on record after unloading for audit, but
// only loading and in-transit bookings count as actively manifested.
func (b *Booking) HasActiveManifest() bool {
	return b.manifestID != nil && (b.status == StatusLoading || b.status == StatusInTransit)
}

// AssignToManifest links the booking to a manifest and moves it to loading.
// A booking already linked to an active manifest is rejected: one
// consignment travels on one vehicle at a time.
func (b *Booking) AssignToManifest(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	if b.HasActiveManifest() {
		return ErrAlreadyManifested
	}

	status, err := b.status.Load()
	if err != nil {
		return err
	}

	b.status = status
	b.manifestID = &manifestID
	return nil
}

// MarkInTransit moves the booking to in_transit when its manifest departs.
// A booking with no manifest link can never be in transit.
func (b *Booking) MarkInTransit() error {
	if b.manifestID == nil {
		return ErrNotManifested
	}

	status, err := b.status.Transit()
	if err != nil {
		return err
	}

	b.status = status
	return nil
}

// MarkUnloaded records receipt of the booking at the destination branch,
// merging in the POD block with pending status. Unrelated fields are
// untouched; this is a merge-patch, not a replace.
func (b *Booking) MarkUnloaded(pod ProofOfDelivery) error {
	status, err := b.status.Unload()
	if err != nil {
		return err
	}

	b.status = status
	b.pod = &pod
	b.unloadingStatus = UnloadingNone
	return nil
}

// MarkMissingAtUnload flags the booking as reported missing during an
// unloading call. The booking stays in transit; only the marker is merged
// in, so a resumed unloading run may apply it again without effect.
func (b *Booking) MarkMissingAtUnload() error {
	if b.status != StatusInTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to report missing", b.status),
		)
	}

	b.unloadingStatus = UnloadingMissing
	return nil
}

// ConfirmDelivery resolves the booking to delivered and the POD to
// delivered status. Requires an unloaded booking with a pending POD.
func (b *Booking) ConfirmDelivery() error {
	if b.pod == nil {
		return ErrProofOfDeliveryMissing
	}

	status, err := b.status.Deliver()
	if err != nil {
		return err
	}

	pod, err := b.pod.confirm()
	if err != nil {
		return err
	}

	b.status = status
	b.pod = &pod
	return nil
}

// Cancel marks the booking cancelled. Allowed only before departure; the
// record is kept, never deleted.
func (b *Booking) Cancel() error {
	status, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = status
	return nil
}

func computeTotal(articles []ArticleLine, mode PaymentMode) float64 {
	if mode == PaymentQuotation {
		return 0
	}
	var total float64
	for _, a := range articles {
		total += a.Amount()
	}
	return total
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setLRNumber(lrNumber LRNumber) error {
	if err := lrNumber.Validate(); err != nil {
		return err
	}
	b.lrNumber = lrNumber
	return nil
}

func (b *Booking) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

func (b *Booking) setRoute(origin, destination kernel.BranchCode) error {
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
	b.origin = origin
	b.destination = destination
	return nil
}

func (b *Booking) setConsignor(consignor Party) error {
	if err := consignor.Validate(); err != nil {
		return err
	}
	b.consignor = consignor
	return nil
}

func (b *Booking) setConsignee(consignee Party) error {
	if err := consignee.Validate(); err != nil {
		return err
	}
	b.consignee = consignee
	return nil
}

func (b *Booking) setDestinationAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("destination_address")
	}
	b.destinationAddress = address
	return nil
}

func (b *Booking) setArticles(articles []ArticleLine) error {
	if len(articles) == 0 {
		return ErrArticlesAreRequired
	}
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	b.articles = articles
	return nil
}

func (b *Booking) setPaymentMode(mode PaymentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	b.paymentMode = mode
	return nil
}

func (b *Booking) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	b.createdAt = createdAt
	return nil
}
