package warehouserepo_test

import (
	"context"
	"testing"

	"retail/internal/adapters/out/postgres/pgtest"
	"retail/internal/adapters/out/postgres/warehouserepo"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/warehouse"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type WarehouseRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Container
	tracker    *MockAggregateTracker
	repository *warehouserepo.GormWarehouseRepository
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&warehouserepo.WarehouseDTO{}))
}

func (suite *WarehouseRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("warehouses"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = warehouserepo.NewGormWarehouseRepository(suite.pg.DB, suite.tracker)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	w, err := warehouse.NewWarehouse(kernel.NewUUID(), "Main warehouse", "1 Mira st")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, w))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", w.ID(), w)

	got, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal(w.ID(), got.ID())
	suite.Equal("Main warehouse", got.Name())
	suite.Equal("1 Mira st", got.Address())
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	w, _ := warehouse.NewWarehouse(kernel.NewUUID(), "Main warehouse", "1 Mira st")
	suite.Require().NoError(suite.repository.Add(ctx, w))

	suite.Require().NoError(w.Rename("South warehouse", "5 Yuzhnaya st"))
	suite.Require().NoError(suite.repository.Update(ctx, w))

	got, err := suite.repository.Get(ctx, w.ID())
	suite.Require().NoError(err)
	suite.Equal("South warehouse", got.Name())
	suite.Equal("5 Yuzhnaya st", got.Address())
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestUnknownWarehouse() {
	ctx := context.Background()
	w, _ := warehouse.NewWarehouse(kernel.NewUUID(), "Ghost", "nowhere")

	_, err := suite.repository.Get(ctx, w.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(suite.repository.Update(ctx, w), errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, w.ID()), errs.ErrObjectNotFound)
}

func (suite *WarehouseRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	w, _ := warehouse.NewWarehouse(kernel.NewUUID(), "Main warehouse", "1 Mira st")
	suite.Require().NoError(suite.repository.Add(ctx, w))

	suite.Require().NoError(suite.repository.Delete(ctx, w.ID()))

	_, err := suite.repository.Get(ctx, w.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestWarehouseRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseRepositoryIntegrationTestSuite))
}
