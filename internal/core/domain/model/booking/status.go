package booking

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking (one consignment).
// It implements a state machine with monotonic forward-only transitions;
// the only sideways exit is cancellation, reachable before departure.
//
// State transitions:
//
//	booked ──> loading ──> in_transit ──> unloaded ──> delivered
//	   │          │
//	   └──────────┴──> cancelled
//
// Status is a value object that validates state transitions and provides
// the wire-visible string vocabulary for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusBooked is the initial status assigned at creation, once the
	// LR number has been allocated.
	StatusBooked

	// StatusLoading indicates the booking has been attached to a manifest
	// that has not yet departed.
	StatusLoading

	// StatusInTransit indicates the booking is travelling on a departed manifest.
	StatusInTransit

	// StatusUnloaded indicates the booking was received at the destination
	// branch. POD data is attached at this transition.
	StatusUnloaded

	// StatusDelivered indicates the consignee took delivery. Terminal.
	StatusDelivered

	// StatusCancelled indicates the booking was cancelled before departure.
	// Terminal. Cancellation is a status transition, never a row deletion.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusBooked:    "booked",
		StatusLoading:   "loading",
		StatusInTransit: "in_transit",
		StatusUnloaded:  "unloaded",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusBooked:    "booked",
		StatusLoading:   "loading",
		StatusInTransit: "in_transit",
		StatusUnloaded:  "unloaded",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-visible name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire representation.
// Used when reconstructing bookings from persistence.
func StatusFromString(str string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", str))
}

// Load transitions the status to loading.
//
// Valid transitions:
//   - booked -> loading (booking attached to a manifest)
//
// Returns (0, error) if the booking is in any other state: a consignment
// can only be put on a vehicle once, before departure.
func (s Status) Load() (Status, error) {
	if s != StatusBooked {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start loading", s.String()),
		)
	}
	return StatusLoading, nil
}

// Transit transitions the status to in_transit.
//
// Valid transitions:
//   - loading -> in_transit (the carrying manifest departed)
func (s Status) Transit() (Status, error) {
	if s != StatusLoading {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to transit", s.String()),
		)
	}
	return StatusInTransit, nil
}

// Unload transitions the status to unloaded.
//
// Valid transitions:
//   - in_transit -> unloaded (received at the destination branch)
func (s Status) Unload() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to unload", s.String()),
		)
	}
	return StatusUnloaded, nil
}

// Deliver transitions the status to delivered.
//
// Valid transitions:
//   - unloaded -> delivered (consignee took delivery, POD resolved)
func (s Status) Deliver() (Status, error) {
	if s != StatusUnloaded {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to cancelled.
//
// Valid transitions:
//   - booked -> cancelled
//   - loading -> cancelled (vehicle has not departed yet)
//
// A booking that already left the origin branch cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusBooked && s != StatusLoading {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return StatusCancelled, nil
}
