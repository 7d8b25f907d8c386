package queries

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetIncomingManifestsQueryHandler retrieves in-transit manifests headed for
// the caller's branch. Elevated callers see every inbound trip.
//
// The primary read joins the loading records so each trip carries its booking
// count and total package figure. If that read fails, the handler degrades to
// a flat manifests-only read with nil relationship fields, logging the join
// failure instead of surfacing it. Receiving staff can still see what trucks
// are coming even when part of the schema is unhealthy.
type GetIncomingManifestsQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetIncomingManifestsQueryHandler creates a handler for inbound trip queries.
func NewGetIncomingManifestsQueryHandler(db *gorm.DB, logger *slog.Logger) GetIncomingManifestsQueryHandler {
	return GetIncomingManifestsQueryHandler{db: db, logger: logger}
}

// Handle executes the query. Results are sorted by departure time, oldest
// trips first, so the longest-running transits surface at the top.
func (h GetIncomingManifestsQueryHandler) Handle(
	ctx context.Context,
	query GetIncomingManifestsQuery,
) ([]GetIncomingManifestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	manifests, err := h.readWithLoad(ctx, query)
	if err == nil {
		return manifests, nil
	}

	h.logger.Warn("incoming manifests joined read failed, serving flat read",
		"error", err,
	)

	return h.readFlat(ctx, query)
}

func (h GetIncomingManifestsQueryHandler) readWithLoad(
	ctx context.Context,
	query GetIncomingManifestsQuery,
) ([]GetIncomingManifestsQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.number,
			m.vehicle_number,
			m.driver_name,
			m.driver_phone,
			m.origin,
			m.destination,
			m.departed_at,
			COUNT(lr.booking_id),
			COALESCE(SUM(b.total_packages), 0)
		FROM manifests m
		LEFT JOIN loading_records lr ON lr.manifest_id = m.id
		LEFT JOIN bookings b ON b.id = lr.booking_id
		WHERE m.status = ?
			AND (? OR m.destination = ?)
		GROUP BY m.id, m.number, m.vehicle_number, m.driver_name,
			m.driver_phone, m.origin, m.destination, m.departed_at
		ORDER BY m.departed_at
	`, manifest.StatusInTransit.String(),
		query.Actor().IsElevated(),
		query.Actor().Branch().String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	manifests := make([]GetIncomingManifestsQueryResponse, 0)

	for rows.Next() {
		var resp GetIncomingManifestsQueryResponse
		var id uuid.UUID
		var departedAt *time.Time
		var bookingCount, totalPackages int

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.VehicleNumber,
			&resp.DriverName,
			&resp.DriverPhone,
			&resp.Origin,
			&resp.Destination,
			&departedAt,
			&bookingCount,
			&totalPackages,
		)
		if err != nil {
			return nil, err
		}

		manifestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = manifestID
		resp.DepartedAt = departedAt
		resp.BookingCount = &bookingCount
		resp.TotalPackages = &totalPackages
		manifests = append(manifests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return manifests, nil
}

func (h GetIncomingManifestsQueryHandler) readFlat(
	ctx context.Context,
	query GetIncomingManifestsQuery,
) ([]GetIncomingManifestsQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			vehicle_number,
			driver_name,
			driver_phone,
			origin,
			destination,
			departed_at
		FROM manifests
		WHERE status = ?
			AND (? OR destination = ?)
		ORDER BY departed_at
	`, manifest.StatusInTransit.String(),
		query.Actor().IsElevated(),
		query.Actor().Branch().String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	manifests := make([]GetIncomingManifestsQueryResponse, 0)

	for rows.Next() {
		var resp GetIncomingManifestsQueryResponse
		var id uuid.UUID
		var departedAt *time.Time

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.VehicleNumber,
			&resp.DriverName,
			&resp.DriverPhone,
			&resp.Origin,
			&resp.Destination,
			&departedAt,
		)
		if err != nil {
			return nil, err
		}

		manifestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = manifestID
		resp.DepartedAt = departedAt
		manifests = append(manifests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return manifests, nil
}
