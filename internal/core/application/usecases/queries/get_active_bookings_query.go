package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetActiveBookingsQueryIsNotConstructed = errors.New(
	"GetActiveBookingsQuery must be created via NewGetActiveBookingsQuery constructor",
)

// GetActiveBookingsQuery retrieves bookings that are still moving through the
// pipeline. Delivered and cancelled bookings are excluded. Operators see only
// bookings touching their branch on either end of the route; elevated callers
// see everything.
type GetActiveBookingsQuery struct {
	actor auth.Context

	guard guard.ConstructorGuard
}

// NewGetActiveBookingsQuery creates a query scoped to the caller.
func NewGetActiveBookingsQuery(actor auth.Context) (GetActiveBookingsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveBookingsQuery{}, err
	}
	return GetActiveBookingsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveBookingsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetActiveBookingsQuery) Actor() auth.Context {
	return q.actor
}

// GetActiveBookingsQueryResponse is a flat work-queue row for one booking
// still in the pipeline.
type GetActiveBookingsQueryResponse struct {
	ID            kernel.UUID
	LRNumber      string
	Origin        string
	Destination   string
	ConsigneeName string
	Status        string
	TotalPackages int
	TotalAmount   float64
	CreatedAt     time.Time
}
