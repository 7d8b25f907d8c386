package unloadingrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/unloading"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnloadingRepository implements UnloadingRepository using GORM.
type GormUnloadingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUnloadingRepository creates a new GORM unloading repository.
func NewGormUnloadingRepository(db *gorm.DB, tracker aggregateTracker) *GormUnloadingRepository {
	return &GormUnloadingRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddSession saves an immutable unloading session. The unique index on the
// manifest id rejects a second session for the same manifest.
func (r *GormUnloadingRepository) AddSession(ctx context.Context, session *unloading.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(session)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("manifest_id", session.ManifestID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(session.ID(), session)
	return nil
}

// GetSessionByManifest retrieves the unloading session recorded for a manifest.
func (r *GormUnloadingRepository) GetSessionByManifest(ctx context.Context, manifestID kernel.UUID) (*unloading.Session, error) {
	if err := manifestID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "manifest_id = ?", manifestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unloading session", manifestID.String())
		}
		return nil, err
	}

	return sessionToDomain(dto)
}

// AddSaga saves a new saga row. The partial unique index on incomplete sagas
// rejects a second live saga for the same manifest, which is what makes a
// duplicate unloading call fail fast instead of double-processing.
func (r *GormUnloadingRepository) AddSaga(ctx context.Context, saga *unloading.Saga) error {
	if err := saga.Validate(); err != nil {
		return err
	}

	dto, err := sagaFromDomain(saga)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("manifest_id", saga.ManifestID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(saga.ID(), saga)
	return nil
}

// UpdateSaga persists the saga's advanced cursor or completion.
func (r *GormUnloadingRepository) UpdateSaga(ctx context.Context, saga *unloading.Saga) error {
	if err := saga.Validate(); err != nil {
		return err
	}

	dto, err := sagaFromDomain(saga)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(saga.ID(), saga)
	return nil
}

// GetIncompleteSagasStartedBefore retrieves every saga that has not completed
// and started before the cutoff, oldest first, so the resume job re-drives
// interrupted workflows in arrival order. Sagas younger than the cutoff are
// left alone; a live synchronous call is still driving them.
func (r *GormUnloadingRepository) GetIncompleteSagasStartedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*unloading.Saga, error) {
	var dtos []SagaDTO
	if err := r.db.WithContext(ctx).
		Where("completed_at IS NULL AND started_at < ?", cutoff).
		Order("started_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	sagas := make([]*unloading.Saga, 0, len(dtos))
	for _, dto := range dtos {
		saga, err := sagaToDomain(dto)
		if err != nil {
			return nil, err
		}
		sagas = append(sagas, saga)
	}

	return sagas, nil
}
