package booking

import (
	"fmt"
	"regexp"
	"strconv"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const (
	// lrSeqMin and lrSeqMax bound the five-digit sequence component.
	lrSeqMin = 1
	lrSeqMax = 99999

	// lrYearMin and lrYearMax bound the four-digit year component.
	lrYearMin = 1000
	lrYearMax = 9999
)

// lrNumberPattern is the wire-visible shape of every LR number.
var lrNumberPattern = regexp.MustCompile(`^([A-Z]{3})-([A-Z]{3})-(\d{4})-(\d{5})$`)

// LRNumber is the Lorry-Receipt document number identifying one booking.
// Its textual form is ORIGIN-DEST-YEAR-SEQ (e.g. "HYD-BLR-2026-00042"),
// where SEQ strictly increases for every booking created in the same
// (origin, destination, year) scope.
//
// LRNumber is a value object: immutable, comparable, constructed only via
// NewLRNumber (fresh allocation) or ParseLRNumber (restore from storage).
type LRNumber struct {
	origin      kernel.BranchCode
	destination kernel.BranchCode
	year        int
	seq         int
}

// NewLRNumber builds an LR number from its components. The sequence value
// comes from the per-scope allocator; this constructor only enforces shape,
// never uniqueness.
func NewLRNumber(origin, destination kernel.BranchCode, year, seq int) (LRNumber, error) {
	if err := origin.Validate(); err != nil {
		return LRNumber{}, err
	}
	if err := destination.Validate(); err != nil {
		return LRNumber{}, err
	}
	if year < lrYearMin || year > lrYearMax {
		return LRNumber{}, errs.NewValueIsOutOfRangeError("year", year, lrYearMin, lrYearMax)
	}
	if seq < lrSeqMin || seq > lrSeqMax {
		return LRNumber{}, errs.NewValueIsOutOfRangeError("seq", seq, lrSeqMin, lrSeqMax)
	}

	return LRNumber{
		origin:      origin,
		destination: destination,
		year:        year,
		seq:         seq,
	}, nil
}

// ParseLRNumber reconstructs an LR number from its textual form.
// The input must match ^[A-Z]{3}-[A-Z]{3}-\d{4}-\d{5}$ exactly.
func ParseLRNumber(s string) (LRNumber, error) {
	m := lrNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return LRNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"lr number",
			fmt.Errorf("%q does not match ORIGIN-DEST-YEAR-SEQ", s),
		)
	}

	origin, err := kernel.NewBranchCode(m[1])
	if err != nil {
		return LRNumber{}, err
	}
	destination, err := kernel.NewBranchCode(m[2])
	if err != nil {
		return LRNumber{}, err
	}
	year, _ := strconv.Atoi(m[3])
	seq, _ := strconv.Atoi(m[4])

	return NewLRNumber(origin, destination, year, seq)
}

// String returns the canonical textual form, zero-padding the year to four
// and the sequence to five digits.
func (n LRNumber) String() string {
	return fmt.Sprintf("%s-%s-%04d-%05d", n.origin, n.destination, n.year, n.seq)
}

// Origin returns the origin branch code embedded in the number.
func (n LRNumber) Origin() kernel.BranchCode {
	return n.origin
}

// Destination returns the destination branch code embedded in the number.
func (n LRNumber) Destination() kernel.BranchCode {
	return n.destination
}

// Year returns the four-digit booking year.
func (n LRNumber) Year() int {
	return n.year
}

// Seq returns the per-scope sequence value.
func (n LRNumber) Seq() int {
	return n.seq
}

// IsEqual compares two LR numbers for equality.
func (n LRNumber) IsEqual(other LRNumber) bool {
	return n == other
}

// Validate checks that the LR number was constructed through NewLRNumber
// or ParseLRNumber rather than as a zero value.
func (n LRNumber) Validate() error {
	if n == (LRNumber{}) {
		return errs.NewValueIsRequiredError("lr number")
	}
	return nil
}
