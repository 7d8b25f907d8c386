// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains the list of aggregates touched by
// one business transaction and coordinates writing out changes atomically.
//
// Key features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-commit processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.BookingRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns one transaction; concurrent goroutines must
// use separate instances. The LR allocator is exposed on the same handle so
// an allocated sequence commits or rolls back together with the booking
// that claimed it.
package postgres

import (
	"context"

	"freight/internal/adapters/out/postgres/bookingrepo"
	"freight/internal/adapters/out/postgres/customerrepo"
	"freight/internal/adapters/out/postgres/lrcounter"
	"freight/internal/adapters/out/postgres/manifestrepo"
	"freight/internal/adapters/out/postgres/unloadingrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh instance with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for one business operation. Repositories obtained from it run on
// the active transaction if one was begun, otherwise directly on the main
// connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// BookingRepository provides booking persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.handle(), uow)
}

// ManifestRepository provides manifest persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) ManifestRepository() ports.ManifestRepository {
	return manifestrepo.NewGormManifestRepository(uow.handle(), uow)
}

// CustomerRepository provides customer persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.handle(), uow)
}

// UnloadingRepository provides unloading persistence bound to the current
// transaction.
func (uow *GormUnitOfWork) UnloadingRepository() ports.UnloadingRepository {
	return unloadingrepo.NewGormUnloadingRepository(uow.handle(), uow)
}

// LRAllocator provides the sequence allocator bound to the current
// transaction.
func (uow *GormUnitOfWork) LRAllocator() ports.LRAllocator {
	return lrcounter.NewGormLRAllocator(uow.handle())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on every add and update; the
// tracked list enables post-commit processing such as event publication.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
