package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// branchCodeLength is the fixed width of a branch code.
// The width is load-bearing: LR numbers embed two branch codes and must
// match the documented wire format exactly.
const branchCodeLength = 3

// BranchCode is a value object identifying one organizational branch.
// It is a fixed-width code of three uppercase ASCII letters (e.g. "HYD", "BLR")
// used to scope visibility, route manifests, and key LR number sequences.
//
// The zero value is invalid; construct via NewBranchCode.
// BranchCode is immutable and safe for concurrent use.
//
// Example usage:
//
//	origin, err := kernel.NewBranchCode("HYD")
//	if err != nil {
//	    // handle invalid code
//	}
type BranchCode struct {
	code string
}

// NewBranchCode creates a BranchCode from its string form.
// The input must be exactly three uppercase ASCII letters; anything else
// is rejected so a malformed code can never reach an LR number or an
// authorization check.
func NewBranchCode(code string) (BranchCode, error) {
	if code == "" {
		return BranchCode{}, errs.NewValueIsRequiredError("branch code")
	}
	if len(code) != branchCodeLength {
		return BranchCode{}, errs.NewValueIsInvalidErrorWithCause(
			"branch code",
			fmt.Errorf("%q must be exactly %d characters", code, branchCodeLength),
		)
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return BranchCode{}, errs.NewValueIsInvalidErrorWithCause(
				"branch code",
				fmt.Errorf("%q must contain only uppercase letters A-Z", code),
			)
		}
	}

	return BranchCode{code: code}, nil
}

// String returns the three-letter code.
// For a zero value BranchCode, this returns the empty string.
func (b BranchCode) String() string {
	return b.code
}

// IsEqual compares two branch codes for equality.
func (b BranchCode) IsEqual(other BranchCode) bool {
	return b.code == other.code
}

// Validate checks that the BranchCode was constructed via NewBranchCode.
// A zero value fails with a required-value error.
func (b BranchCode) Validate() error {
	if b.code == "" {
		return errs.NewValueIsRequiredError("branch code")
	}
	return nil
}
