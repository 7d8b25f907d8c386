// Package manifestrepo provides data transfer objects and mapping functions
// for manifest persistence. Loading records are child rows keyed by the
// manifest, loaded and saved together with the aggregate.
package manifestrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the database structure for persisting manifest
// aggregates.
type ManifestDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Number         string             `gorm:"type:varchar(64);not null;uniqueIndex"`
	VehicleNumber  string             `gorm:"type:varchar(32);not null"`
	DriverName     string             `gorm:"type:varchar(255);not null"`
	DriverPhone    string             `gorm:"type:varchar(16);not null"`
	Origin         string             `gorm:"type:varchar(8);not null;index"`
	Destination    string             `gorm:"type:varchar(8);not null;index"`
	Status         string             `gorm:"type:varchar(16);not null;index"`
	LoadingRecords []LoadingRecordDTO `gorm:"foreignKey:ManifestID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time          `gorm:"not null"`
	DepartedAt     *time.Time
	UnloadedAt     *time.Time
}

// TableName specifies the database table name for manifest entities.
func (ManifestDTO) TableName() string {
	return "manifests"
}

// LoadingRecordDTO represents one booking loaded onto a manifest. Links to
// the manifest via foreign key and to the booking it loaded.
type LoadingRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManifestID uuid.UUID `gorm:"type:uuid;not null;index"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for loading record entities.
func (LoadingRecordDTO) TableName() string {
	return "loading_records"
}

// fromDomain converts a manifest domain aggregate to its database
// representation, including all loading records.
func fromDomain(aggregate *manifest.Manifest) ManifestDTO {
	manifestID := aggregate.ID().Bytes()
	records := make([]LoadingRecordDTO, 0, len(aggregate.LoadingRecords()))

	for _, r := range aggregate.LoadingRecords() {
		records = append(records, LoadingRecordDTO{
			ID:         r.ID().Bytes(),
			ManifestID: manifestID,
			BookingID:  r.BookingID().Bytes(),
			LoadedAt:   r.LoadedAt(),
		})
	}

	return ManifestDTO{
		ID:             manifestID,
		Number:         aggregate.Number(),
		VehicleNumber:  aggregate.VehicleNumber(),
		DriverName:     aggregate.DriverName(),
		DriverPhone:    aggregate.DriverPhone(),
		Origin:         aggregate.Origin().String(),
		Destination:    aggregate.Destination().String(),
		Status:         aggregate.Status().String(),
		LoadingRecords: records,
		CreatedAt:      aggregate.CreatedAt(),
		DepartedAt:     aggregate.DepartedAt(),
		UnloadedAt:     aggregate.UnloadedAt(),
	}
}

// toDomain converts a database DTO to a manifest domain aggregate using
// RestoreManifest.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewBranchCode(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewBranchCode(dto.Destination)
	if err != nil {
		return nil, err
	}

	status, err := manifest.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	records := make([]*manifest.LoadingRecord, 0, len(dto.LoadingRecords))
	for _, rDto := range dto.LoadingRecords {
		r, rErr := loadingRecordToDomain(rDto)
		if rErr != nil {
			return nil, rErr
		}
		records = append(records, r)
	}

	return manifest.RestoreManifest(
		id,
		dto.Number, dto.VehicleNumber, dto.DriverName, dto.DriverPhone,
		origin, destination,
		status, records,
		dto.CreatedAt, dto.DepartedAt, dto.UnloadedAt,
	)
}

func loadingRecordToDomain(dto LoadingRecordDTO) (*manifest.LoadingRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	return manifest.RestoreLoadingRecord(id, bookingID, dto.LoadedAt)
}
