package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates.
// Provides methods for storing and retrieving manifest entities with their
// loading records.
type ManifestRepository interface {
	// Add persists a new manifest aggregate to storage.
	// The manifest must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists changes to an existing manifest aggregate.
	// The manifest must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate by its unique identifier.
	// Returns the complete manifest with all its loading records.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)
}
