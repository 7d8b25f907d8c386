// Package legacy mirrors unloading sessions into the flat records table the
// previous generation of the system wrote, kept alive for downstream
// reporting jobs that still read it. The table uses numeric snowflake ids
// and denormalized columns; nothing in the engine reads it back.
package legacy

import (
	"context"
	"time"

	"freight/internal/core/domain/model/unloading"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// RecordDTO represents one row in the legacy unloading records table.
type RecordDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement:false"`
	ManifestID      string    `gorm:"type:varchar(36);not null;index"`
	ReceivingBranch string    `gorm:"type:varchar(8);not null"`
	ItemsGood       int       `gorm:"type:int;not null"`
	ItemsDamaged    int       `gorm:"type:int;not null"`
	ItemsMissing    int       `gorm:"type:int;not null"`
	Notes           string    `gorm:"type:varchar(1024)"`
	RecordedAt      time.Time `gorm:"not null"`
}

// TableName specifies the legacy table name, preserved from the old system.
func (RecordDTO) TableName() string {
	return "legacy_unloading_records"
}

// GormLegacyRecorder implements LegacyRecorder against the legacy table.
// It writes on its own connection, outside the workflow's transactions;
// the caller treats failures as non-fatal.
type GormLegacyRecorder struct {
	db   *gorm.DB
	node *snowflake.Node
}

// NewGormLegacyRecorder creates a recorder. The node id distinguishes
// concurrent instances so generated ids never collide.
func NewGormLegacyRecorder(db *gorm.DB, nodeID int64) (*GormLegacyRecorder, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&RecordDTO{}); err != nil {
		return nil, err
	}

	return &GormLegacyRecorder{db: db, node: node}, nil
}

// RecordUnloading writes one legacy record for the session.
func (r *GormLegacyRecorder) RecordUnloading(ctx context.Context, session *unloading.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := RecordDTO{
		ID:              r.node.Generate().Int64(),
		ManifestID:      session.ManifestID().String(),
		ReceivingBranch: session.ReceivingBranch().String(),
		ItemsGood:       session.ItemsGood(),
		ItemsDamaged:    session.ItemsDamaged(),
		ItemsMissing:    session.ItemsMissing(),
		Notes:           session.Notes(),
		RecordedAt:      session.CreatedAt(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
