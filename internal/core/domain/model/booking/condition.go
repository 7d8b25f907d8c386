package booking

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// ConditionKind enumerates the physical condition of one booking as observed
// at unloading time.
type ConditionKind int

const (
	// ConditionUnknown represents an invalid or undefined condition.
	ConditionUnknown ConditionKind = iota

	// ConditionGood means every package arrived intact.
	ConditionGood

	// ConditionDamaged means at least one package arrived damaged.
	// A damaged condition always carries non-empty remarks.
	ConditionDamaged

	// ConditionMissing means the booking did not physically arrive with
	// its manifest. A missing booking stays in transit rather than being
	// marked unloaded.
	ConditionMissing
)

func getConditionKindStrings() map[ConditionKind]string {
	return map[ConditionKind]string{
		ConditionUnknown: "unknown",
		ConditionGood:    "good",
		ConditionDamaged: "damaged",
		ConditionMissing: "missing",
	}
}

// String returns the wire-visible name of the condition kind.
func (k ConditionKind) String() string {
	if s, ok := getConditionKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the kind is one of good, damaged, or missing.
func (k ConditionKind) Validate() error {
	if k != ConditionGood && k != ConditionDamaged && k != ConditionMissing {
		return errs.NewValueIsInvalidErrorWithCause(
			"condition", fmt.Errorf("%d is not a valid condition", k))
	}
	return nil
}

// ConditionKindFromString parses a condition kind from its wire representation.
func ConditionKindFromString(s string) (ConditionKind, error) {
	for kind, str := range getConditionKindStrings() {
		if kind != ConditionUnknown && str == s {
			return kind, nil
		}
	}
	return ConditionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"condition", fmt.Errorf("%q is not a valid condition", s))
}

// Condition is a tagged value describing one booking's observed condition:
// good, damaged (with mandatory remarks), or missing. It is transient input
// to the unloading workflow, folded into the booking's POD block and the
// session's aggregate tallies; it is never persisted as its own entity.
//
// A Condition is only valid when produced by NewGoodCondition,
// NewDamagedCondition, or NewMissingCondition; the zero value fails Validate.
type Condition struct {
	kind    ConditionKind
	remarks string
}

// NewGoodCondition creates a condition for a booking received intact.
func NewGoodCondition() Condition {
	return Condition{kind: ConditionGood}
}

// NewDamagedCondition creates a condition for a booking received damaged.
// Remarks describing the damage are mandatory; an empty string is rejected
// so that every damage claim is traceable.
func NewDamagedCondition(remarks string) (Condition, error) {
	if remarks == "" {
		return Condition{}, errs.NewValueIsRequiredError("damage remarks")
	}
	return Condition{kind: ConditionDamaged, remarks: remarks}, nil
}

// NewMissingCondition creates a condition for a booking that did not arrive.
func NewMissingCondition() Condition {
	return Condition{kind: ConditionMissing}
}

// Kind returns the condition tag.
func (c Condition) Kind() ConditionKind {
	return c.kind
}

// Remarks returns the damage remarks; empty for good and missing conditions.
func (c Condition) Remarks() string {
	return c.remarks
}

// IsMissing reports whether this condition marks a non-arrived booking.
func (c Condition) IsMissing() bool {
	return c.kind == ConditionMissing
}

// Validate checks that the condition was built through one of the
// constructors and that its invariants hold.
func (c Condition) Validate() error {
	if err := c.kind.Validate(); err != nil {
		return err
	}
	if c.kind == ConditionDamaged && c.remarks == "" {
		return errs.NewValueIsRequiredError("damage remarks")
	}
	return nil
}
