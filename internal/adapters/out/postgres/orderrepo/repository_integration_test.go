package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fabtrack/internal/adapters/out/postgres/orderrepo"
	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ComponentDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, components RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(componentCount int) *order.Order {
	components := make([]*component.Component, 0, componentCount)
	for range componentCount {
		c, err := component.NewComponent("gear", 100, 2)
		suite.Require().NoError(err)
		components = append(components, c)
	}

	orderDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder("ACME", "winch", orderDate, deadline, components)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsIdentities() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Positive(aggregate.ID())
	for _, c := range aggregate.Components() {
		suite.Positive(c.ID())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), restored.ID())
	suite.Equal("ACME", restored.CustomerName())
	suite.Equal("winch", restored.ProductName())
	suite.Equal(order.Active, restored.Status())
	suite.Len(restored.Components(), 2)
	suite.Equal(4, restored.Quantity())
	suite.InEpsilon(400.0, restored.TotalPrice(), 1e-9)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 99999)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsOrderFields() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	newName := "Globex"
	suite.Require().NoError(aggregate.UpdateDetails(&newName, nil, nil, nil))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Globex", restored.CustomerName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	aggregate := suite.newOrder(1)
	suite.Require().NoError(aggregate.AssignID(99999))

	err := suite.repository.Update(context.Background(), aggregate)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompleteCascade_CompletesEveryComponentRow() {
	ctx := context.Background()
	aggregate := suite.newOrder(3)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	for _, c := range aggregate.Components() {
		suite.Require().NoError(c.ChangeStatus(component.Completed))
	}
	suite.Require().NoError(aggregate.Complete(time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)))
	suite.Require().NoError(suite.repository.CompleteCascade(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, restored.Status())
	suite.Require().NotNil(restored.CompletedAt())
	for _, c := range restored.Components() {
		suite.Equal(component.Completed, c.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddComponent_AppendsRow() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	extra, err := component.NewComponent("bearing", 50, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddComponent(ctx, aggregate.ID(), extra))
	suite.Positive(extra.ID())

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Components(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateComponent_ScopedByOwningOrder() {
	ctx := context.Background()
	owner := suite.newOrder(1)
	other := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, owner))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	target := owner.Components()[0]
	suite.Require().NoError(target.ChangeStatus(component.Completed))

	// correct owner succeeds
	suite.Require().NoError(suite.repository.UpdateComponent(ctx, owner.ID(), target))

	// wrong owner must not touch the row
	err := suite.repository.UpdateComponent(ctx, other.ID(), target)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateComponent_CanClearDescription() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	target := aggregate.Components()[0]
	target.ChangeDescription("anodized finish")
	suite.Require().NoError(suite.repository.UpdateComponent(ctx, aggregate.ID(), target))

	target.ChangeDescription("")
	suite.Require().NoError(suite.repository.UpdateComponent(ctx, aggregate.ID(), target))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Empty(restored.Components()[0].Description())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteComponent_RemovesSingleRow() {
	ctx := context.Background()
	aggregate := suite.newOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	victim := aggregate.Components()[0]
	suite.Require().NoError(suite.repository.DeleteComponent(ctx, aggregate.ID(), victim.ID()))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Components(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteComponentsByOrder_ReportsCount() {
	ctx := context.Background()
	aggregate := suite.newOrder(3)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	deleted, err := suite.repository.DeleteComponentsByOrder(ctx, aggregate.ID())

	suite.Require().NoError(err)
	suite.Equal(int64(3), deleted)

	deleted, err = suite.repository.DeleteComponentsByOrder(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Zero(deleted)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderRow() {
	ctx := context.Background()
	aggregate := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_GroupsComponentsByOrder() {
	ctx := context.Background()
	first := suite.newOrder(2)
	second := suite.newOrder(1)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	orders, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(first.ID(), orders[0].ID())
	suite.Len(orders[0].Components(), 2)
	suite.Equal(second.ID(), orders[1].ID())
	suite.Len(orders[1].Components(), 1)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
