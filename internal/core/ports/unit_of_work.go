package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BookingRepository returns a BookingRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	BookingRepository() BookingRepository

	// ManifestRepository returns a ManifestRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ManifestRepository() ManifestRepository

	// CustomerRepository returns a CustomerRepository instance bound to the current transaction.
	CustomerRepository() CustomerRepository

	// UnloadingRepository returns an UnloadingRepository instance bound to the current transaction.
	UnloadingRepository() UnloadingRepository

	// LRAllocator returns the sequence allocator bound to the current
	// transaction, so an allocated number commits or rolls back together
	// with the booking that claimed it.
	LRAllocator() LRAllocator
}
