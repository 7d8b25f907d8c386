// Package notify delivers workflow announcements. The current implementation
// writes structured log lines; branch staff consume them through the log
// pipeline. Swapping in SMS or push delivery only means implementing the
// Notifier port again.
package notify

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/unloading"
)

// SlogNotifier implements Notifier by emitting structured log records.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// NotifyManifestUnloaded announces that a manifest finished unloading.
func (n *SlogNotifier) NotifyManifestUnloaded(ctx context.Context, session *unloading.Session) {
	n.logger.InfoContext(ctx, "manifest unloaded",
		"manifest_id", session.ManifestID().String(),
		"receiving_branch", session.ReceivingBranch().String(),
		"items_good", session.ItemsGood(),
		"items_damaged", session.ItemsDamaged(),
		"items_missing", session.ItemsMissing(),
	)
}
