package booking_test

import (
	"regexp"
	"testing"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lrWireFormat = regexp.MustCompile(`^[A-Z]{3}-[A-Z]{3}-\d{4}-\d{5}$`)

func mustBranch(t *testing.T, code string) kernel.BranchCode {
	t.Helper()
	bc, err := kernel.NewBranchCode(code)
	require.NoError(t, err)
	return bc
}

func TestNewLRNumber(t *testing.T) {
	hyd := mustBranch(t, "HYD")
	blr := mustBranch(t, "BLR")

	t.Run("formats_with_zero_padding", func(t *testing.T) {
		n, err := booking.NewLRNumber(hyd, blr, 2026, 42)
		require.NoError(t, err)
		assert.Equal(t, "HYD-BLR-2026-00042", n.String())
		assert.Regexp(t, lrWireFormat, n.String())
	})

	t.Run("max_seq", func(t *testing.T) {
		n, err := booking.NewLRNumber(hyd, blr, 2026, 99999)
		require.NoError(t, err)
		assert.Equal(t, "HYD-BLR-2026-99999", n.String())
	})

	t.Run("seq_out_of_range", func(t *testing.T) {
		_, err := booking.NewLRNumber(hyd, blr, 2026, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = booking.NewLRNumber(hyd, blr, 2026, 100000)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("year_out_of_range", func(t *testing.T) {
		_, err := booking.NewLRNumber(hyd, blr, 999, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = booking.NewLRNumber(hyd, blr, 10000, 1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("missing_branch", func(t *testing.T) {
		var zero kernel.BranchCode
		_, err := booking.NewLRNumber(zero, blr, 2026, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParseLRNumber(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		n, err := booking.ParseLRNumber("HYD-BLR-2026-00042")
		require.NoError(t, err)
		assert.Equal(t, "HYD", n.Origin().String())
		assert.Equal(t, "BLR", n.Destination().String())
		assert.Equal(t, 2026, n.Year())
		assert.Equal(t, 42, n.Seq())
		assert.Equal(t, "HYD-BLR-2026-00042", n.String())
	})

	t.Run("rejects_malformed", func(t *testing.T) {
		for _, s := range []string{
			"",
			"HYD-BLR-2026-0042",    // four-digit seq
			"HYD-BLR-26-00042",     // two-digit year
			"HYDX-BLR-2026-00042",  // wide origin
			"hyd-blr-2026-00042",   // lowercase
			"HYD_BLR_2026_00042",   // wrong separator
			"HYD-BLR-2026-00042-X", // trailing junk
		} {
			_, err := booking.ParseLRNumber(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", s)
		}
	})
}

func TestLRNumber_Validate(t *testing.T) {
	var zero booking.LRNumber
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)

	n, err := booking.NewLRNumber(mustBranch(t, "HYD"), mustBranch(t, "BLR"), 2026, 1)
	require.NoError(t, err)
	require.NoError(t, n.Validate())
}
