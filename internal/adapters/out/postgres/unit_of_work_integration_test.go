package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &userrepo.UserDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(trackingNumber int64) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		trackingNumber,
		nil,
		order.Contact{Name: "Jane Doe", Email: "jane@example.com", Phone: "+15550100", Address: "1 Main St"},
		[]order.LineItem{{ProductID: "sku-1", Quantity: 1}},
		10,
		"cod",
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossAggregates() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testUser, err := user.NewUser(kernel.NewUUID(), "Jane Doe", "jane@example.com", user.RoleCustomer, "hash")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, testUser))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(1)))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows(&orderrepo.OrderDTO{}))
	suite.Equal(int64(1), suite.countRows(&userrepo.UserDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(1)))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows(&orderrepo.OrderDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_LeavesDataIntact() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(1)))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Equal(int64(1), suite.countRows(&orderrepo.OrderDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLinkOwnerAndReadBack_SameTransaction() {
	ctx := context.Background()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, suite.newOrder(1)))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, suite.newOrder(2)))
	suite.Require().NoError(setup.Commit(ctx))

	ownerID := kernel.NewUUID()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	linked, err := uow.OrderRepository().LinkOwnerByEmail(ctx, "jane@example.com", ownerID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), linked)

	owned, err := uow.OrderRepository().GetByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Len(owned, 2)

	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
