package commands_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/auth"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/core/domain/model/unloading"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustBranch(t *testing.T, code string) kernel.BranchCode {
	t.Helper()
	branch, err := kernel.NewBranchCode(code)
	require.NoError(t, err)
	return branch
}

func operatorAt(t *testing.T, code string) auth.Context {
	t.Helper()
	actor, err := auth.NewContext(kernel.NewUUID(), auth.RoleOperator, mustBranch(t, code))
	require.NoError(t, err)
	return actor
}

func adminAt(t *testing.T, code string) auth.Context {
	t.Helper()
	actor, err := auth.NewContext(kernel.NewUUID(), auth.RoleAdmin, mustBranch(t, code))
	require.NoError(t, err)
	return actor
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAllByManifest(
	ctx context.Context,
	manifestID kernel.UUID,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, manifestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByMobile(ctx context.Context, mobile string) (*customer.Customer, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockUnloadingRepository struct{ mock.Mock }

func (m *MockUnloadingRepository) AddSession(ctx context.Context, session *unloading.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockUnloadingRepository) GetSessionByManifest(
	ctx context.Context,
	manifestID kernel.UUID,
) (*unloading.Session, error) {
	args := m.Called(ctx, manifestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*unloading.Session), args.Error(1)
}

func (m *MockUnloadingRepository) AddSaga(ctx context.Context, saga *unloading.Saga) error {
	args := m.Called(ctx, saga)
	return args.Error(0)
}

func (m *MockUnloadingRepository) UpdateSaga(ctx context.Context, saga *unloading.Saga) error {
	args := m.Called(ctx, saga)
	return args.Error(0)
}

func (m *MockUnloadingRepository) GetIncompleteSagasStartedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*unloading.Saga, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*unloading.Saga), args.Error(1)
}

type MockLRAllocator struct{ mock.Mock }

func (m *MockLRAllocator) NextSequence(
	ctx context.Context,
	origin, destination kernel.BranchCode,
	year int,
) (int, error) {
	args := m.Called(ctx, origin, destination, year)
	return args.Int(0), args.Error(1)
}

type MockLegacyRecorder struct{ mock.Mock }

func (m *MockLegacyRecorder) RecordUnloading(ctx context.Context, session *unloading.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyManifestUnloaded(ctx context.Context, session *unloading.Session) {
	m.Called(ctx, session)
}

// MockUoW satisfies every unit of work interface the command handlers use,
// so one mock type serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) UnloadingRepository() ports.UnloadingRepository {
	args := m.Called()
	return args.Get(0).(ports.UnloadingRepository)
}

func (m *MockUoW) LRAllocator() ports.LRAllocator {
	args := m.Called()
	return args.Get(0).(ports.LRAllocator)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockUnloadingUoWFactory struct{ mock.Mock }

func (m *MockUnloadingUoWFactory) Create() commands.UnloadingUoW {
	args := m.Called()
	return args.Get(0).(commands.UnloadingUoW)
}
