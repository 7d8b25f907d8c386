package postgres_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres"
	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the GORM
// unit of work against a real PostgreSQL instance, including the coupling of
// LR sequence allocation to the booking insert.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bookings, customers, lr_counters CASCADE").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCustomer() *customer.Customer {
	aggregate, err := customer.NewCustomer(
		kernel.NewUUID(), "Nandini Stores", "9000000002",
		"Chickpet, Bengaluru", time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestBooking(seq int) *booking.Booking {
	origin, err := kernel.NewBranchCode("HYD")
	suite.Require().NoError(err)
	destination, err := kernel.NewBranchCode("BLR")
	suite.Require().NoError(err)

	lrNumber, err := booking.NewLRNumber(origin, destination, 2026, seq)
	suite.Require().NoError(err)

	consignor, err := booking.NewParty("Sri Lakshmi Traders", "9000000001", "Begum Bazar, Hyderabad")
	suite.Require().NoError(err)
	consignee, err := booking.NewParty("Nandini Stores", "9000000002", "Chickpet, Bengaluru")
	suite.Require().NoError(err)

	line, err := booking.NewArticleLine("Cotton bales", 12, 480.5, 5400)
	suite.Require().NoError(err)

	aggregate, err := booking.NewBooking(
		kernel.NewUUID(), lrNumber, kernel.NewUUID(),
		origin, destination,
		consignor, consignee,
		"14/2 Chickpet Main Road, Bengaluru",
		[]booking.ArticleLine{line}, booking.PaymentPaid,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testCustomer := suite.createTestCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))

	testBooking := suite.createTestBooking(1)
	suite.Require().NoError(uow.BookingRepository().Add(ctx, testBooking))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Equal(testBooking.LRNumber().String(), restored.LRNumber().String())

	restoredCustomer, err := verify.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)
	suite.Equal(testCustomer.Mobile(), restoredCustomer.Mobile())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testBooking := suite.createTestBooking(2)
	suite.Require().NoError(uow.BookingRepository().Add(ctx, testBooking))

	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_ReleasesAllocatedSequence() {
	ctx := context.Background()
	origin, err := kernel.NewBranchCode("HYD")
	suite.Require().NoError(err)
	destination, err := kernel.NewBranchCode("BLR")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	seq, err := uow.LRAllocator().NextSequence(ctx, origin, destination, 2026)
	suite.Require().NoError(err)
	suite.Equal(1, seq)

	suite.Require().NoError(uow.Rollback(ctx))

	// The aborted transaction released its increment, so the next
	// allocation sees the counter as if the first never happened.
	next := suite.factory.Create()
	suite.Require().NoError(next.Begin(ctx))
	seq, err = next.LRAllocator().NextSequence(ctx, origin, destination, 2026)
	suite.Require().NoError(err)
	suite.Equal(1, seq)
	suite.Require().NoError(next.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
