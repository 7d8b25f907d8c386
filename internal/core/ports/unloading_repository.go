package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/unloading"
)

// UnloadingRepository defines the persistence contract for unloading sessions
// and their sagas. Saga rows are the durable progress of the non-atomic
// unloading workflow; at most one incomplete saga exists per manifest and the
// repository enforces that uniqueness on AddSaga.
type UnloadingRepository interface {
	// AddSession persists an immutable unloading session.
	AddSession(ctx context.Context, session *unloading.Session) error

	// GetSessionByManifest retrieves the unloading session for a manifest,
	// if one was recorded.
	GetSessionByManifest(ctx context.Context, manifestID kernel.UUID) (*unloading.Session, error)

	// AddSaga persists a new saga row. Returns a conflict error when an
	// incomplete saga already exists for the same manifest.
	AddSaga(ctx context.Context, saga *unloading.Saga) error

	// UpdateSaga persists the saga's advanced cursor or completion.
	UpdateSaga(ctx context.Context, saga *unloading.Saga) error

	// GetIncompleteSagasStartedBefore retrieves every saga that has not
	// completed and started before the cutoff, oldest first. The resume job
	// passes a cutoff in the recent past so it never picks up a saga that a
	// live synchronous call is still driving.
	GetIncompleteSagasStartedBefore(ctx context.Context, cutoff time.Time) ([]*unloading.Saga, error)
}
