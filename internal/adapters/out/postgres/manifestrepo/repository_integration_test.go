package manifestrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/manifestrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/manifest"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ManifestRepositoryIntegrationTestSuite provides integration tests for
// ManifestRepository using PostgreSQL containers.
type ManifestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *manifestrepo.GormManifestRepository
	tracker    *MockAggregateTracker
}

func (suite *ManifestRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *ManifestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE manifests CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = manifestrepo.NewGormManifestRepository(suite.db, suite.tracker)
}

func (suite *ManifestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ManifestRepositoryIntegrationTestSuite) createTestManifest(number string) *manifest.Manifest {
	origin, err := kernel.NewBranchCode("HYD")
	suite.Require().NoError(err)
	destination, err := kernel.NewBranchCode("BLR")
	suite.Require().NoError(err)

	aggregate, err := manifest.NewManifest(
		kernel.NewUUID(), number,
		"TS09UB1234", "Ravi Kumar", "9000000003",
		origin, destination,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ManifestRepositoryIntegrationTestSuite) TestAdd_ValidManifest_Roundtrip() {
	ctx := context.Background()
	aggregate := suite.createTestManifest("OGPL-HYD-BLR-2026-0A1B2C3D")

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.Number(), restored.Number())
	suite.Equal("TS09UB1234", restored.VehicleNumber())
	suite.Equal(manifest.StatusCreated, restored.Status())
	suite.Empty(restored.LoadingRecords())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ManifestRepositoryIntegrationTestSuite) TestUpdate_PersistsLoadingRecordsAndDeparture() {
	ctx := context.Background()
	aggregate := suite.createTestManifest("OGPL-HYD-BLR-2026-11223344")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	firstBooking := kernel.NewUUID()
	secondBooking := kernel.NewUUID()
	now := time.Now().UTC()
	suite.Require().NoError(aggregate.AddBooking(firstBooking, now))
	suite.Require().NoError(aggregate.AddBooking(secondBooking, now))
	suite.Require().NoError(aggregate.Depart(now))

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(manifest.StatusInTransit, restored.Status())
	suite.Require().NotNil(restored.DepartedAt())
	suite.Len(restored.LoadingRecords(), 2)
	suite.True(restored.Carries(firstBooking))
	suite.True(restored.Carries(secondBooking))
}

func (suite *ManifestRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflict() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestManifest("OGPL-HYD-BLR-2026-AAAA1111")))

	err := suite.repository.Add(ctx, suite.createTestManifest("OGPL-HYD-BLR-2026-AAAA1111"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ManifestRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestManifestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ManifestRepositoryIntegrationTestSuite))
}
