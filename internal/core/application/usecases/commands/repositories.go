// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// ManifestRepoFactory provides access to manifest repository within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// UnloadingRepoFactory provides access to unloading repository within a transaction.
	UnloadingRepoFactory interface {
		UnloadingRepository() ports.UnloadingRepository
	}

	// AllocatorFactory provides the sequence allocator within a transaction,
	// so an allocated number commits or rolls back with the booking that
	// claimed it.
	AllocatorFactory interface {
		LRAllocator() ports.LRAllocator
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// BookingUoW manages transactions for booking operations. Creation also
	// resolves the customer and draws from the sequence allocator inside
	// the same transaction.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		CustomerRepoFactory
		AllocatorFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ManifestUoW manages transactions across manifest and booking
	// aggregates. Used by the loading and dispatch workflows, which flip
	// both sides together.
	ManifestUoW interface {
		TxManager
		ManifestRepoFactory
		BookingRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// UnloadingUoW manages transactions for the unloading workflow. Each
	// workflow step runs in its own unit of work; the saga row carries
	// progress between them.
	UnloadingUoW interface {
		TxManager
		ManifestRepoFactory
		BookingRepoFactory
		UnloadingRepoFactory
	}

	// UnloadingUoWFactory creates new unloading unit of work instances.
	UnloadingUoWFactory interface {
		Create() UnloadingUoW
	}
)
