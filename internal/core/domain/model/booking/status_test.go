package booking_test

import (
	"testing"

	"freight/internal/core/domain/model/booking"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status booking.Status
		want   string
	}{
		{booking.StatusUnknown, "unknown"},
		{booking.StatusBooked, "booked"},
		{booking.StatusLoading, "loading"},
		{booking.StatusInTransit, "in_transit"},
		{booking.StatusUnloaded, "unloaded"},
		{booking.StatusDelivered, "delivered"},
		{booking.StatusCancelled, "cancelled"},
		{booking.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusBooked, booking.StatusLoading, booking.StatusInTransit,
		booking.StatusUnloaded, booking.StatusDelivered, booking.StatusCancelled,
	} {
		require.NoError(t, s.Validate())
	}

	require.ErrorIs(t, booking.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, booking.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatusFromString(t *testing.T) {
	s, err := booking.StatusFromString("in_transit")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusInTransit, s)

	_, err = booking.StatusFromString("shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

// transition exercises every transition method against every starting state.
func TestStatus_Transitions(t *testing.T) {
	all := []booking.Status{
		booking.StatusUnknown, booking.StatusBooked, booking.StatusLoading,
		booking.StatusInTransit, booking.StatusUnloaded, booking.StatusDelivered,
		booking.StatusCancelled,
	}

	tests := []struct {
		name       string
		transition func(booking.Status) (booking.Status, error)
		allowed    map[booking.Status]booking.Status
	}{
		{
			name:       "Load",
			transition: booking.Status.Load,
			allowed: map[booking.Status]booking.Status{
				booking.StatusBooked: booking.StatusLoading,
			},
		},
		{
			name:       "Transit",
			transition: booking.Status.Transit,
			allowed: map[booking.Status]booking.Status{
				booking.StatusLoading: booking.StatusInTransit,
			},
		},
		{
			name:       "Unload",
			transition: booking.Status.Unload,
			allowed: map[booking.Status]booking.Status{
				booking.StatusInTransit: booking.StatusUnloaded,
			},
		},
		{
			name:       "Deliver",
			transition: booking.Status.Deliver,
			allowed: map[booking.Status]booking.Status{
				booking.StatusUnloaded: booking.StatusDelivered,
			},
		},
		{
			name:       "Cancel",
			transition: booking.Status.Cancel,
			allowed: map[booking.Status]booking.Status{
				booking.StatusBooked:  booking.StatusCancelled,
				booking.StatusLoading: booking.StatusCancelled,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range all {
				got, err := tt.transition(from)
				if want, ok := tt.allowed[from]; ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, want, got)
				} else {
					require.ErrorIs(t, err, errs.ErrValueIsInvalid, "from %s", from)
				}
			}
		})
	}
}
