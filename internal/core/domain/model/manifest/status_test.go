package manifest_test

import (
	"testing"

	"freight/internal/core/domain/model/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status manifest.Status
		want   string
	}{
		{manifest.StatusCreated, "created"},
		{manifest.StatusInTransit, "in_transit"},
		{manifest.StatusUnloaded, "unloaded"},
		{manifest.StatusCompleted, "completed"},
		{manifest.StatusUnknown, "unknown"},
		{manifest.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_valid_statuses", func(t *testing.T) {
		for _, want := range []manifest.Status{
			manifest.StatusCreated,
			manifest.StatusInTransit,
			manifest.StatusUnloaded,
			manifest.StatusCompleted,
		} {
			got, err := manifest.StatusFromString(want.String())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		for _, str := range []string{"", "unknown", "CREATED", "departed"} {
			_, err := manifest.StatusFromString(str)
			assert.Error(t, err, str)
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	all := []manifest.Status{
		manifest.StatusCreated,
		manifest.StatusInTransit,
		manifest.StatusUnloaded,
		manifest.StatusCompleted,
	}

	tests := []struct {
		name       string
		transition func(manifest.Status) (manifest.Status, error)
		from       manifest.Status
		want       manifest.Status
	}{
		{"depart", manifest.Status.Depart, manifest.StatusCreated, manifest.StatusInTransit},
		{"unload", manifest.Status.Unload, manifest.StatusInTransit, manifest.StatusUnloaded},
		{"complete", manifest.Status.Complete, manifest.StatusUnloaded, manifest.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range all {
				got, err := tt.transition(from)
				if from == tt.from {
					require.NoError(t, err)
					assert.Equal(t, tt.want, got)
					continue
				}
				assert.Error(t, err, "from %s", from)
			}
		})
	}
}
