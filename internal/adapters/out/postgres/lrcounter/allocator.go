// Package lrcounter provides the database-backed LR number sequence
// allocator. One counter row exists per (origin, destination, year) scope;
// allocation is a single atomic upsert so concurrent bookings on the same
// route never observe the same sequence.
package lrcounter

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// CounterDTO represents one LR sequence counter row. The composite unique
// index is what the allocator's upsert conflicts against.
type CounterDTO struct {
	Origin      string `gorm:"type:varchar(8);not null;uniqueIndex:idx_lr_counters_scope,priority:1"`
	Destination string `gorm:"type:varchar(8);not null;uniqueIndex:idx_lr_counters_scope,priority:2"`
	Year        int    `gorm:"type:int;not null;uniqueIndex:idx_lr_counters_scope,priority:3"`
	NextSeq     int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for LR counter rows.
func (CounterDTO) TableName() string {
	return "lr_counters"
}

// GormLRAllocator implements LRAllocator using an atomic Postgres upsert.
// It must run on the same transaction handle as the booking insert that
// claims the number, so an aborted booking releases its sequence only by
// rolling the whole transaction back.
type GormLRAllocator struct {
	db *gorm.DB
}

// NewGormLRAllocator creates a new allocator bound to the given connection
// or transaction handle.
func NewGormLRAllocator(db *gorm.DB) *GormLRAllocator {
	return &GormLRAllocator{db: db}
}

// NextSequence atomically increments and returns the counter for the given
// scope, creating the row at 1 on first use. Row-level locking on the
// upserted row serializes concurrent allocations within the same scope.
func (a *GormLRAllocator) NextSequence(ctx context.Context, origin, destination kernel.BranchCode, year int) (int, error) {
	if err := origin.Validate(); err != nil {
		return 0, err
	}
	if err := destination.Validate(); err != nil {
		return 0, err
	}

	var seq int
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO lr_counters (origin, destination, year, next_seq)
		VALUES (?, ?, ?, 1)
		ON CONFLICT (origin, destination, year)
		DO UPDATE SET next_seq = lr_counters.next_seq + 1
		RETURNING next_seq
	`, origin.String(), destination.String(), year).Scan(&seq).Error
	if err != nil {
		return 0, err
	}

	return seq, nil
}
