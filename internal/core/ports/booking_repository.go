// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
// Provides methods for storing, retrieving, and querying booking entities
// with their complete state including articles and proof of delivery.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	// The booking must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	// Returns the complete booking with its current status, articles,
	// and proof of delivery.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetAllByIDs retrieves the bookings for the given identifiers.
	// Returns an error if any identifier has no booking; the loading and
	// unloading workflows operate on whole batches.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*booking.Booking, error)

	// GetAllByManifest retrieves every booking linked to the given manifest.
	GetAllByManifest(ctx context.Context, manifestID kernel.UUID) ([]*booking.Booking, error)
}
