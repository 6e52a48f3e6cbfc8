package fleetrepo_test

import (
	"context"
	"testing"

	"tourdispatch/internal/adapters/out/postgres/fleetrepo"
	"tourdispatch/internal/adapters/out/postgres/pgtest"
	"tourdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type DirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *fleetrepo.GormDirectory
}

func (suite *DirectoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &fleetrepo.DriverDTO{}, &fleetrepo.VehicleDTO{})
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.directory = fleetrepo.NewGormDirectory(db)

	suite.Require().NoError(db.Create([]fleetrepo.DriverDTO{{ID: "D2", Name: "Bea"}, {ID: "D1"}}).Error)
	suite.Require().NoError(db.Create([]fleetrepo.VehicleDTO{
		{ID: "V1", Description: "Van", Plate: "ab-123-cd"},
		{ID: "V2", Description: "Truck", Plate: "EF-456-GH", UnderMaintenance: true},
	}).Error)
}

func (suite *DirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DirectoryIntegrationTestSuite) TestDrivers() {
	drivers, err := suite.directory.ListDrivers(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(drivers, 2)
	suite.Equal("D1", drivers[0].ID())
	suite.Equal("D1", drivers[0].Name(), "a nameless driver is shown by id")

	d, err := suite.directory.GetDriver(context.Background(), "D2")
	suite.Require().NoError(err)
	suite.Equal("Bea", d.Name())

	_, err = suite.directory.GetDriver(context.Background(), "D9")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DirectoryIntegrationTestSuite) TestVehicles() {
	vehicles, err := suite.directory.ListVehicles(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(vehicles, 2)
	suite.Equal("AB-123-CD", vehicles[0].Plate())
	suite.True(vehicles[0].Available())

	v, err := suite.directory.GetVehicle(context.Background(), "V2")
	suite.Require().NoError(err)
	suite.True(v.UnderMaintenance())

	_, err = suite.directory.GetVehicle(context.Background(), "V9")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryIntegrationTestSuite))
}
