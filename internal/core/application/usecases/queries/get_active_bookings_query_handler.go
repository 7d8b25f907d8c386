package queries

import (
	"context"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveBookingsQueryHandler retrieves bookings still in the pipeline from
// the database. Filters out delivered and cancelled bookings to provide the
// branch's active workload.
type GetActiveBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveBookingsQueryHandler creates a handler for active booking queries.
// Requires a GORM database connection for query execution.
func NewGetActiveBookingsQueryHandler(db *gorm.DB) GetActiveBookingsQueryHandler {
	return GetActiveBookingsQueryHandler{db: db}
}

// Handle executes the query. Operators get bookings whose origin or
// destination is their branch; elevated callers get the whole pipeline.
// Results are sorted newest first.
func (h GetActiveBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveBookingsQuery,
) ([]GetActiveBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bookings := make([]GetActiveBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			lr_number,
			origin,
			destination,
			consignee_name,
			status,
			total_packages,
			total_amount,
			created_at
		FROM bookings
		WHERE status NOT IN (?, ?)
			AND (? OR origin = ? OR destination = ?)
		ORDER BY created_at DESC
	`, booking.StatusDelivered.String(),
		booking.StatusCancelled.String(),
		query.Actor().IsElevated(),
		query.Actor().Branch().String(),
		query.Actor().Branch().String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveBookingsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.LRNumber,
			&resp.Origin,
			&resp.Destination,
			&resp.ConsigneeName,
			&resp.Status,
			&resp.TotalPackages,
			&resp.TotalAmount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bookingID
		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
