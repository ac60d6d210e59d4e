package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"deliveryescrow/internal/adapters/out/postgres/deliveryrepo"
	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/delivery"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	created := time.Now().UTC().Truncate(time.Microsecond)
	sender := kernel.NewAccount()
	receiver := kernel.NewAccount()
	deadline := created.Add(48 * time.Hour)

	hash := kernel.DeriveDeliveryHash(
		sender, receiver, "1 Main St", "2 Side St",
		kernel.NewMoney(100), kernel.NewMoney(10), deadline,
	)
	d, err := delivery.NewDelivery(
		hash, sender, receiver, "1 Main St", "2 Side St",
		kernel.NewMoney(100), kernel.NewMoney(10), deadline,
		commission.DefaultRate, created,
	)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()
	d := suite.createTestDelivery()

	suite.Require().NoError(suite.repository.Add(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.Hash())
	suite.Require().NoError(err)
	suite.True(loaded.Hash().IsEqual(d.Hash()))
	suite.True(loaded.Sender().IsEqual(d.Sender()))
	suite.True(loaded.Receiver().IsEqual(d.Receiver()))
	suite.Nil(loaded.Courier())
	suite.Equal(delivery.Pending, loaded.State())
	suite.Equal(d.Reward(), loaded.Reward())
	suite.Equal(d.CautionAmount(), loaded.CautionAmount())
	suite.Equal(d.CommissionRate(), loaded.CommissionRate())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_DuplicateHash_Fails() {
	ctx := context.Background()
	d := suite.createTestDelivery()

	suite.Require().NoError(suite.repository.Add(ctx, d))
	err := suite.repository.Add(ctx, d)
	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentifier)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	d := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	courier := kernel.NewAccount()
	suite.Require().NoError(d.Apply(courier, d.CautionAmount()))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.Hash())
	suite.Require().NoError(err)
	suite.Equal(delivery.AwaitingPickup, loaded.State())
	suite.Require().NotNil(loaded.Courier())
	suite.True(loaded.Courier().IsEqual(courier))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_MissingDelivery_NotFound() {
	ctx := context.Background()
	d := suite.createTestDelivery()

	err := suite.repository.Update(ctx, d)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_MissingDelivery_NotFound() {
	ctx := context.Background()
	d := suite.createTestDelivery()

	_, err := suite.repository.Get(ctx, d.Hash())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestExistsAndCount() {
	ctx := context.Background()
	first := suite.createTestDelivery()
	second := suite.createTestDelivery()

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	exists, err := suite.repository.Exists(ctx, first.Hash())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, suite.createTestDelivery().Hash())
	suite.Require().NoError(err)
	suite.False(exists)

	count, err = suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestHashAt_EnumerationOrder() {
	ctx := context.Background()
	first := suite.createTestDelivery()
	second := suite.createTestDelivery()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	at0, err := suite.repository.HashAt(ctx, 0)
	suite.Require().NoError(err)
	suite.True(at0.IsEqual(first.Hash()))

	at1, err := suite.repository.HashAt(ctx, 1)
	suite.Require().NoError(err)
	suite.True(at1.IsEqual(second.Hash()))

	_, err = suite.repository.HashAt(ctx, 2)
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetAllStartedPastDeadline() {
	ctx := context.Background()

	started := suite.createTestDelivery()
	courier := kernel.NewAccount()
	suite.Require().NoError(started.Apply(courier, started.CautionAmount()))
	suite.Require().NoError(started.Start(started.Sender(), started.Reward(), time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, started))

	pending := suite.createTestDelivery()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	// Before the deadline nothing is overdue.
	overdue, err := suite.repository.GetAllStartedPastDeadline(ctx, started.Deadline())
	suite.Require().NoError(err)
	suite.Empty(overdue)

	overdue, err = suite.repository.GetAllStartedPastDeadline(ctx, started.Deadline().Add(time.Second))
	suite.Require().NoError(err)
	suite.Require().Len(overdue, 1)
	suite.True(overdue[0].Hash().IsEqual(started.Hash()))
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
