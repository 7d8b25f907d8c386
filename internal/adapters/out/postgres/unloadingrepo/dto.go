// Package unloadingrepo provides data transfer objects and mapping functions
// for unloading persistence: the immutable session summary and the workflow
// saga row that drives crash recovery.
package unloadingrepo

import (
	"encoding/json"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/unloading"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionDTO represents the database structure for persisting unloading
// sessions. One session per manifest; the manifest id carries a unique index.
type SessionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManifestID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ReceivingBranch string    `gorm:"type:varchar(8);not null;index"`
	ItemsGood       int       `gorm:"type:int;not null"`
	ItemsDamaged    int       `gorm:"type:int;not null"`
	ItemsMissing    int       `gorm:"type:int;not null"`
	Notes           string    `gorm:"type:varchar(1024)"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for unloading session entities.
func (SessionDTO) TableName() string {
	return "unloading_sessions"
}

// SagaDTO represents the database structure for persisting the unloading
// workflow cursor. The reported conditions travel with the row as JSONB so a
// resumed run replays exactly the batch the caller submitted. A partial
// unique index on (manifest_id) WHERE completed_at IS NULL, created in the
// migrations, allows at most one live saga per manifest.
type SagaDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManifestID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceivingBranch string    `gorm:"type:varchar(8);not null"`
	Notes           string    `gorm:"type:varchar(1024)"`
	Conditions      datatypes.JSON
	Step            string    `gorm:"type:varchar(32);not null"`
	StartedAt       time.Time `gorm:"not null"`
	CompletedAt     *time.Time
}

// TableName specifies the database table name for unloading saga entities.
func (SagaDTO) TableName() string {
	return "unloading_sagas"
}

type conditionDTO struct {
	Kind    string `json:"kind"`
	Remarks string `json:"remarks,omitempty"`
}

// sessionFromDomain converts a session domain aggregate to its database
// representation.
func sessionFromDomain(session *unloading.Session) SessionDTO {
	return SessionDTO{
		ID:              session.ID().Bytes(),
		ManifestID:      session.ManifestID().Bytes(),
		ReceivingBranch: session.ReceivingBranch().String(),
		ItemsGood:       session.ItemsGood(),
		ItemsDamaged:    session.ItemsDamaged(),
		ItemsMissing:    session.ItemsMissing(),
		Notes:           session.Notes(),
		CreatedAt:       session.CreatedAt(),
	}
}

// sessionToDomain converts a database DTO to a session domain aggregate.
func sessionToDomain(dto SessionDTO) (*unloading.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	manifestID, err := kernel.UUIDFromBytes(dto.ManifestID[:])
	if err != nil {
		return nil, err
	}

	branch, err := kernel.NewBranchCode(dto.ReceivingBranch)
	if err != nil {
		return nil, err
	}

	return unloading.RestoreSession(id, manifestID, branch,
		dto.ItemsGood, dto.ItemsDamaged, dto.ItemsMissing,
		dto.Notes, dto.CreatedAt)
}

// sagaFromDomain converts a saga domain aggregate to its database
// representation, serializing the condition batch to JSON keyed by booking id.
func sagaFromDomain(saga *unloading.Saga) (SagaDTO, error) {
	conditions := make(map[string]conditionDTO, len(saga.Conditions()))
	for bookingID, condition := range saga.Conditions() {
		conditions[bookingID.String()] = conditionDTO{
			Kind:    condition.Kind().String(),
			Remarks: condition.Remarks(),
		}
	}
	conditionsJSON, err := json.Marshal(conditions)
	if err != nil {
		return SagaDTO{}, err
	}

	return SagaDTO{
		ID:              saga.ID().Bytes(),
		ManifestID:      saga.ManifestID().Bytes(),
		ReceivingBranch: saga.ReceivingBranch().String(),
		Notes:           saga.Notes(),
		Conditions:      conditionsJSON,
		Step:            saga.Step().String(),
		StartedAt:       saga.StartedAt(),
		CompletedAt:     saga.CompletedAt(),
	}, nil
}

// sagaToDomain converts a database DTO to a saga domain aggregate using
// RestoreSaga.
func sagaToDomain(dto SagaDTO) (*unloading.Saga, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	manifestID, err := kernel.UUIDFromBytes(dto.ManifestID[:])
	if err != nil {
		return nil, err
	}

	branch, err := kernel.NewBranchCode(dto.ReceivingBranch)
	if err != nil {
		return nil, err
	}

	step, err := unloading.StepFromString(dto.Step)
	if err != nil {
		return nil, err
	}

	var conditionDTOs map[string]conditionDTO
	if err = json.Unmarshal(dto.Conditions, &conditionDTOs); err != nil {
		return nil, err
	}
	conditions := make(map[kernel.UUID]booking.Condition, len(conditionDTOs))
	for rawID, c := range conditionDTOs {
		bookingID, idErr := kernel.UUIDFromString(rawID)
		if idErr != nil {
			return nil, idErr
		}
		condition, cErr := conditionToDomain(c)
		if cErr != nil {
			return nil, cErr
		}
		conditions[bookingID] = condition
	}

	return unloading.RestoreSaga(id, manifestID, branch, dto.Notes,
		conditions, step, dto.StartedAt, dto.CompletedAt)
}

func conditionToDomain(dto conditionDTO) (booking.Condition, error) {
	kind, err := booking.ConditionKindFromString(dto.Kind)
	if err != nil {
		return booking.Condition{}, err
	}

	switch kind {
	case booking.ConditionDamaged:
		return booking.NewDamagedCondition(dto.Remarks)
	case booking.ConditionMissing:
		return booking.NewMissingCondition(), nil
	default:
		return booking.NewGoodCondition(), nil
	}
}
