package manifest

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a manifest (one vehicle trip).
//
// State transitions:
//
//	created ──> in_transit ──> unloaded ──> completed
//
// Every transition is forward-only; there is no cancellation path because a
// manifest with no bookings simply never departs.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusCreated is the initial status: the trip exists, bookings are
	// being attached by the loading workflow.
	StatusCreated

	// StatusInTransit indicates the vehicle departed with its load.
	StatusInTransit

	// StatusUnloaded indicates the receiving branch completed an unloading
	// call. Reachable only after an unloading session exists for the trip.
	StatusUnloaded

	// StatusCompleted indicates all post-receipt reconciliation finished.
	// Terminal.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusCreated:   "created",
		StatusInTransit: "in_transit",
		StatusUnloaded:  "unloaded",
		StatusCompleted: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "created",
		StatusInTransit: "in_transit",
		StatusUnloaded:  "unloaded",
		StatusCompleted: "completed",
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
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(str string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", str))
}

// Depart transitions the status to in_transit.
//
// Valid transitions:
//   - created -> in_transit
func (s Status) Depart() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to depart", s.String()),
		)
	}
	return StatusInTransit, nil
}

// Unload transitions the status to unloaded.
//
// Valid transitions:
//   - in_transit -> unloaded
func (s Status) Unload() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to unload", s.String()),
		)
	}
	return StatusUnloaded, nil
}

// Complete transitions the status to completed.
//
// Valid transitions:
//   - unloaded -> completed
func (s Status) Complete() (Status, error) {
	if s != StatusUnloaded {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return StatusCompleted, nil
}
