package booking

import (
	"fmt"
	"time"

	"freight/internal/pkg/errs"
)

// PODStatus is the proof-of-delivery sub-status a booking carries once it
// has been unloaded.
type PODStatus int

const (
	// PODUnknown represents an invalid or undefined POD status.
	PODUnknown PODStatus = iota

	// PODPending means the booking was received at the destination branch
	// but the consignee has not yet confirmed delivery.
	PODPending

	// PODDelivered means the consignee confirmed delivery.
	PODDelivered
)

func getPODStatusStrings() map[PODStatus]string {
	return map[PODStatus]string{
		PODUnknown:   "unknown",
		PODPending:   "pending",
		PODDelivered: "delivered",
	}
}

// String returns the wire-visible name of the POD status.
func (s PODStatus) String() string {
	if str, ok := getPODStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the POD status is pending or delivered.
func (s PODStatus) Validate() error {
	if s != PODPending && s != PODDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"pod status", fmt.Errorf("%d is not a valid pod status", s))
	}
	return nil
}

// PODStatusFromString parses a POD status from its wire representation.
func PODStatusFromString(str string) (PODStatus, error) {
	for status, s := range getPODStatusStrings() {
		if status != PODUnknown && s == str {
			return status, nil
		}
	}
	return PODUnknown, errs.NewValueIsInvalidErrorWithCause(
		"pod status", fmt.Errorf("%q is not a valid pod status", str))
}

// ProofOfDelivery is the receipt evidence block attached to a booking when
// it is unloaded: observed condition, remarks, an optional photo reference,
// and the receipt timestamp. It starts in pending status and is resolved to
// delivered by the delivery confirmation step.
//
// Attaching a POD is a merge-patch on the booking: it never overwrites
// unrelated booking fields.
type ProofOfDelivery struct {
	status     PODStatus
	condition  Condition
	photoRef   string
	receivedAt time.Time
}

// NewProofOfDelivery creates a pending POD block from the unloading
// condition. The photo reference may be empty; receivedAt must be set.
func NewProofOfDelivery(condition Condition, photoRef string, receivedAt time.Time) (ProofOfDelivery, error) {
	if err := condition.Validate(); err != nil {
		return ProofOfDelivery{}, err
	}
	if condition.IsMissing() {
		return ProofOfDelivery{}, errs.NewValueIsInvalidErrorWithCause(
			"condition", fmt.Errorf("a missing booking cannot carry a proof of delivery"))
	}
	if receivedAt.IsZero() {
		return ProofOfDelivery{}, errs.NewValueIsRequiredError("received at")
	}

	return ProofOfDelivery{
		status:     PODPending,
		condition:  condition,
		photoRef:   photoRef,
		receivedAt: receivedAt,
	}, nil
}

// RestoreProofOfDelivery reconstructs a POD block from persistence.
func RestoreProofOfDelivery(
	status PODStatus, condition Condition, photoRef string, receivedAt time.Time,
) (ProofOfDelivery, error) {
	if err := status.Validate(); err != nil {
		return ProofOfDelivery{}, err
	}
	if err := condition.Validate(); err != nil {
		return ProofOfDelivery{}, err
	}

	return ProofOfDelivery{
		status:     status,
		condition:  condition,
		photoRef:   photoRef,
		receivedAt: receivedAt,
	}, nil
}

// Status returns the POD sub-status.
func (p ProofOfDelivery) Status() PODStatus {
	return p.status
}

// Condition returns the condition observed at unloading.
func (p ProofOfDelivery) Condition() Condition {
	return p.condition
}

// Remarks returns the condition remarks; empty unless the condition is damaged.
func (p ProofOfDelivery) Remarks() string {
	return p.condition.Remarks()
}

// PhotoRef returns the reference to the receipt photo, if one was captured.
func (p ProofOfDelivery) PhotoRef() string {
	return p.photoRef
}

// ReceivedAt returns the receipt timestamp.
func (p ProofOfDelivery) ReceivedAt() time.Time {
	return p.receivedAt
}

// confirm resolves the POD to delivered status.
func (p ProofOfDelivery) confirm() (ProofOfDelivery, error) {
	if p.status != PODPending {
		return ProofOfDelivery{}, errs.NewValueIsInvalidErrorWithCause(
			"pod status", fmt.Errorf("%s is not a valid pod status to confirm", p.status))
	}
	resolved := p
	resolved.status = PODDelivered
	return resolved, nil
}
