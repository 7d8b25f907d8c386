package ports

import (
	"context"

	"freight/internal/core/domain/model/unloading"
)

// Notifier announces workflow outcomes to interested parties. Notifications
// are fire and forget; a failed notification never fails the workflow that
// raised it.
type Notifier interface {
	// NotifyManifestUnloaded announces that a manifest finished unloading.
	NotifyManifestUnloaded(ctx context.Context, session *unloading.Session)
}
