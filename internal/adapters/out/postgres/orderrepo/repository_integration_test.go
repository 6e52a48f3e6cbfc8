package orderrepo_test

import (
	"context"
	"testing"

	"tourdispatch/internal/adapters/out/postgres/orderrepo"
	"tourdispatch/internal/adapters/out/postgres/pgtest"
	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OrderSourceIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	source    *orderrepo.GormOrderSource
}

func (suite *OrderSourceIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &orderrepo.OrderDTO{})
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.source = orderrepo.NewGormOrderSource(db)
}

func (suite *OrderSourceIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.Require().NoError(suite.db.Create([]orderrepo.OrderDTO{
		{ID: "O1", City: "Lyon", AddressLines: pq.StringArray{"1 rue A", ""}, Customer: "Alice", DeliveryDate: "2024-03-05", Volume: 1.5},
		{ID: "O2", City: " lyon ", AddressLines: pq.StringArray{"2 rue B"}, Customer: "Bob", DeliveryDate: "06/03/2024"},
		{ID: "O3", City: "Paris", AddressLines: pq.StringArray{"3 rue C"}, Customer: "Carol", DeliveryDate: "2024-03-05"},
		{ID: "O4", City: "Lyon", AddressLines: pq.StringArray{"4 rue D"}, Customer: "Dan", DeliveryDate: "someday"},
	}).Error)
}

func (suite *OrderSourceIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderSourceIntegrationTestSuite) TestGetOrder_NormalisesTheRow() {
	o, err := suite.source.GetOrder(context.Background(), "O1")

	suite.Require().NoError(err)
	suite.Equal("Lyon", o.City())
	suite.Equal([]string{"1 rue A"}, o.AddressLines())
	suite.Equal("Alice", o.Customer())
	suite.InDelta(1.5, o.Volume(), 1e-9)
	suite.True(o.DeliveryDate().Equal(kernel.MustParseDate("2024-03-05")))
}

func (suite *OrderSourceIntegrationTestSuite) TestGetOrder_DayFirstDate() {
	o, err := suite.source.GetOrder(context.Background(), "O2")

	suite.Require().NoError(err)
	suite.Equal("2024-03-06", o.DeliveryDate().String())
}

func (suite *OrderSourceIntegrationTestSuite) TestGetOrder_UnreadableDateLeavesOrderUndated() {
	o, err := suite.source.GetOrder(context.Background(), "O4")

	suite.Require().NoError(err)
	suite.True(o.DeliveryDate().IsZero())
}

func (suite *OrderSourceIntegrationTestSuite) TestGetOrder_NotFound() {
	_, err := suite.source.GetOrder(context.Background(), "missing")

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderSourceIntegrationTestSuite) TestListOrders_FiltersByDateRangeAndCity() {
	from, to := kernel.MustParseDate("2024-03-04"), kernel.MustParseDate("2024-03-10")

	lyon, err := suite.source.ListOrders(context.Background(), from, to, "LYON")
	suite.Require().NoError(err)
	suite.Require().Len(lyon, 2)
	suite.Equal("O1", lyon[0].ID())
	suite.Equal("O2", lyon[1].ID())

	all, err := suite.source.ListOrders(context.Background(), from, from.AddDays(1), "")
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func TestOrderSourceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderSourceIntegrationTestSuite))
}
