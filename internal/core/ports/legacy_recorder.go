package ports

import (
	"context"

	"freight/internal/core/domain/model/unloading"
)

// LegacyRecorder mirrors unloading sessions into the legacy records table
// kept for downstream reporting. Writes are best effort: the unloading
// workflow logs a failure and carries on without it.
type LegacyRecorder interface {
	// RecordUnloading writes one legacy record for the session.
	RecordUnloading(ctx context.Context, session *unloading.Session) error
}
