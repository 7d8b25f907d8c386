package manifestrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormManifestRepository implements ManifestRepository using GORM.
type GormManifestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManifestRepository creates a new GORM manifest repository.
func NewGormManifestRepository(db *gorm.DB, tracker aggregateTracker) *GormManifestRepository {
	return &GormManifestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manifest to the database.
func (r *GormManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("number", dto.Number, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing manifest to the database, including any loading
// records appended since the last save.
func (r *GormManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Session with FullSaveAssociations upserts the child loading records
	// together with the manifest row.
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a manifest by ID with all its loading records.
func (r *GormManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManifestDTO
	if err := r.db.WithContext(ctx).Preload("LoadingRecords").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
