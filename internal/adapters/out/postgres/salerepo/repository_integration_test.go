package salerepo_test

import (
	"context"
	"testing"
	"time"

	"retail/internal/adapters/out/postgres/pgtest"
	"retail/internal/adapters/out/postgres/salerepo"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/sale"
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

type SaleRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Container
	tracker    *MockAggregateTracker
	repository *salerepo.GormSaleRepository
}

func (suite *SaleRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(pg.DB.AutoMigrate(&salerepo.SaleDTO{}, &salerepo.SaleLineDTO{}))
}

func (suite *SaleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("sale_lines", "sales"))

	suite.tracker = new(MockAggregateTracker)
	suite.repository = salerepo.NewGormSaleRepository(suite.pg.DB, suite.tracker)
}

func (suite *SaleRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *SaleRepositoryIntegrationTestSuite) newSale(cashierID kernel.UUID, productIDs ...kernel.UUID) *sale.Sale {
	lines := make([]sale.Line, 0, len(productIDs))
	for i, id := range productIDs {
		price, err := kernel.MoneyFromString("1999.99")
		suite.Require().NoError(err)
		line, err := sale.NewLine(id, i+1, price)
		suite.Require().NoError(err)
		lines = append(lines, line)
	}
	s, err := sale.NewSale(kernel.NewUUID(), cashierID, kernel.NewUUID(), lines, time.Now())
	suite.Require().NoError(err)
	return s
}

func (suite *SaleRepositoryIntegrationTestSuite) TestAddStoresLines() {
	ctx := context.Background()
	s := suite.newSale(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.tracker.On("TrackAggregate", s.ID(), s).Once()

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.tracker.AssertExpectations(suite.T())

	got, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Len(got.Lines(), 2)
	suite.Equal(sale.Completed, got.Status())
	suite.True(s.Total().Equal(got.Total()), "want %s, got %s", s.Total(), got.Total())
}

func (suite *SaleRepositoryIntegrationTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	s := suite.newSale(kernel.NewUUID(), kernel.NewUUID())
	suite.tracker.On("TrackAggregate", s.ID(), s).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	suite.Require().NoError(s.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, s))

	got, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(sale.Cancelled, got.Status())
	suite.Len(got.Lines(), 1)
}

func (suite *SaleRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	cashierID, productID := kernel.NewUUID(), kernel.NewUUID()
	s := suite.newSale(cashierID, productID)
	suite.tracker.On("TrackAggregate", s.ID(), s).Once()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	ok, err := suite.repository.ExistsForProduct(ctx, productID)
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repository.ExistsForProduct(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(ok)

	ok, err = suite.repository.ExistsForCashier(ctx, cashierID)
	suite.Require().NoError(err)
	suite.True(ok)
}

func (suite *SaleRepositoryIntegrationTestSuite) TestGetUnknown() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestSaleRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SaleRepositoryIntegrationTestSuite))
}
