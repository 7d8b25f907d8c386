package unloading_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/unloading"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSaga(t *testing.T) *unloading.Saga {
	t.Helper()

	saga, err := unloading.NewSaga(
		kernel.NewUUID(), kernel.NewUUID(), mustBranch(t, "BLR"),
		"", mixedConditions(t), time.Now().UTC(),
	)
	require.NoError(t, err)
	return saga
}

func TestNewSaga(t *testing.T) {
	t.Run("starts_at_first_step", func(t *testing.T) {
		saga := validSaga(t)

		require.NoError(t, saga.Validate())
		assert.Equal(t, unloading.StepCreateSession, saga.Step())
		assert.False(t, saga.IsComplete())
		assert.Len(t, saga.Conditions(), 4)
	})

	t.Run("rejects_empty_payload", func(t *testing.T) {
		_, err := unloading.NewSaga(
			kernel.NewUUID(), kernel.NewUUID(), mustBranch(t, "BLR"),
			"", nil, time.Now().UTC(),
		)
		assert.ErrorIs(t, err, unloading.ErrNoConditionsReported)
	})
}

func TestSagaAdvance(t *testing.T) {
	t.Run("walks_every_step_in_order", func(t *testing.T) {
		saga := validSaga(t)

		want := []unloading.Step{
			unloading.StepCreateSession,
			unloading.StepLegacyRecord,
			unloading.StepFlipManifest,
			unloading.StepPatchBookings,
			unloading.StepDone,
		}
		for i, step := range want {
			assert.Equal(t, step, saga.Step())
			if i < len(want)-1 {
				require.NoError(t, saga.Advance())
			}
		}

		assert.ErrorIs(t, saga.Advance(), unloading.ErrSagaAlreadyComplete)
	})
}

func TestSagaComplete(t *testing.T) {
	t.Run("completes_only_after_last_step", func(t *testing.T) {
		saga := validSaga(t)

		assert.Error(t, saga.Complete(time.Now().UTC()))

		for saga.Step() != unloading.StepDone {
			require.NoError(t, saga.Advance())
		}

		completedAt := time.Now().UTC()
		require.NoError(t, saga.Complete(completedAt))
		assert.True(t, saga.IsComplete())
		require.NotNil(t, saga.CompletedAt())
		assert.Equal(t, completedAt, *saga.CompletedAt())

		assert.ErrorIs(t, saga.Complete(time.Now().UTC()), unloading.ErrSagaAlreadyComplete)
	})
}

func TestRestoreSaga(t *testing.T) {
	t.Run("resumes_at_saved_cursor", func(t *testing.T) {
		conditions := map[kernel.UUID]booking.Condition{
			kernel.NewUUID(): booking.NewMissingCondition(),
		}

		saga, err := unloading.RestoreSaga(
			kernel.NewUUID(), kernel.NewUUID(), mustBranch(t, "BLR"),
			"resumed", conditions, unloading.StepPatchBookings,
			time.Now().UTC(), nil,
		)
		require.NoError(t, err)

		assert.Equal(t, unloading.StepPatchBookings, saga.Step())
		assert.False(t, saga.IsComplete())
	})

	t.Run("rejects_unknown_step", func(t *testing.T) {
		_, err := unloading.RestoreSaga(
			kernel.NewUUID(), kernel.NewUUID(), mustBranch(t, "BLR"),
			"", nil, unloading.StepUnknown, time.Now().UTC(), nil,
		)
		assert.Error(t, err)
	})
}

func TestStepFromString(t *testing.T) {
	for _, step := range []unloading.Step{
		unloading.StepCreateSession,
		unloading.StepLegacyRecord,
		unloading.StepFlipManifest,
		unloading.StepPatchBookings,
		unloading.StepDone,
	} {
		got, err := unloading.StepFromString(step.String())
		require.NoError(t, err)
		assert.Equal(t, step, got)
	}

	_, err := unloading.StepFromString("rollback")
	assert.Error(t, err)
}
