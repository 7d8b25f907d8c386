package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetIncomingManifestsQueryIsNotConstructed = errors.New(
	"GetIncomingManifestsQuery must be created via NewGetIncomingManifestsQuery constructor",
)

// GetIncomingManifestsQuery retrieves the manifests currently in transit
// towards the caller's branch, so the receiving team can see what work is
// on the way. Elevated callers see the whole organization's inbound trips.
type GetIncomingManifestsQuery struct {
	actor auth.Context

	guard guard.ConstructorGuard
}

// NewGetIncomingManifestsQuery creates a query scoped to the caller.
func NewGetIncomingManifestsQuery(actor auth.Context) (GetIncomingManifestsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetIncomingManifestsQuery{}, err
	}
	return GetIncomingManifestsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIncomingManifestsQuery) Validate() error {
	return q.guard.Validate(ErrGetIncomingManifestsQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetIncomingManifestsQuery) Actor() auth.Context {
	return q.actor
}

// GetIncomingManifestsQueryResponse represents one inbound trip. The
// relationship fields (BookingCount, TotalPackages) are nil when the
// degraded flat read served the request; the trip itself is always shown.
type GetIncomingManifestsQueryResponse struct {
	ID            kernel.UUID
	Number        string
	VehicleNumber string
	DriverName    string
	DriverPhone   string
	Origin        string
	Destination   string
	DepartedAt    *time.Time
	BookingCount  *int
	TotalPackages *int
}
