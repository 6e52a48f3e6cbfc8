package proofrepo_test

import (
	"context"
	"testing"
	"time"

	"tourdispatch/internal/adapters/out/postgres/pgtest"
	"tourdispatch/internal/adapters/out/postgres/proofrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ProofRegistryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	registry  *proofrepo.GormProofRegistry
}

func (suite *ProofRegistryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background(), &proofrepo.ProofDTO{})
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.registry = proofrepo.NewGormProofRegistry(db)

	now := time.Now().UTC()
	suite.Require().NoError(db.Create([]proofrepo.ProofDTO{
		{OrderID: "O1", Kind: proofrepo.KindProofOfDelivery, RecordedAt: now},
		{OrderID: "O1", Kind: proofrepo.KindProofOfDelivery, RecordedAt: now.Add(time.Minute)},
		{OrderID: "O2", Kind: proofrepo.KindReturnsRecord, RecordedAt: now},
		{OrderID: "O3", Kind: proofrepo.KindProofOfDelivery, RecordedAt: now},
	}).Error)
}

func (suite *ProofRegistryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProofRegistryIntegrationTestSuite) TestWithProofOfDelivery() {
	found, err := suite.registry.WithProofOfDelivery(context.Background(), []string{"O1", "O2"})

	suite.Require().NoError(err)
	suite.Equal([]string{"O1"}, found)
}

func (suite *ProofRegistryIntegrationTestSuite) TestWithReturnsRecord() {
	found, err := suite.registry.WithReturnsRecord(context.Background(), []string{"O1", "O2", "O3"})

	suite.Require().NoError(err)
	suite.Equal([]string{"O2"}, found)
}

func (suite *ProofRegistryIntegrationTestSuite) TestEmptyInput() {
	found, err := suite.registry.WithProofOfDelivery(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(found)
}

func TestProofRegistryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProofRegistryIntegrationTestSuite))
}
