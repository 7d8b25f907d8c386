package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// LRAllocator hands out booking sequence numbers. Each (origin, destination,
// year) scope has its own counter starting at 1 with no gaps or duplicates.
// The allocator is exposed through the unit of work so that taking a number
// and inserting the booking commit in the same transaction: a rolled-back
// booking returns its number to the counter.
type LRAllocator interface {
	// NextSequence atomically increments and returns the counter for the
	// given scope.
	NextSequence(ctx context.Context, origin, destination kernel.BranchCode, year int) (int, error)
}
