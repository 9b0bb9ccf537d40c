package commands_test

import (
	"context"
	"testing"
	"time"

	"fabtrack/internal/core/application/usecases/commands"
	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) CompleteCascade(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AddComponent(ctx context.Context, orderID int64, c *component.Component) error {
	args := m.Called(ctx, orderID, c)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateComponent(ctx context.Context, orderID int64, c *component.Component) error {
	args := m.Called(ctx, orderID, c)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteComponent(ctx context.Context, orderID, componentID int64) error {
	args := m.Called(ctx, orderID, componentID)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteComponentsByOrder(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// test fixtures shared by the handler tests

func fixtureDates() (time.Time, time.Time) {
	orderDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return orderDate, deadline
}

func fixtureCompletedAt() time.Time {
	return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
}

func fixtureOrder(t *testing.T, id int64, statuses ...component.Status) *order.Order {
	t.Helper()

	components := make([]*component.Component, 0, len(statuses))
	for i, status := range statuses {
		c, err := component.RestoreComponent(int64(i+1), "part", 100, 1, status, "")
		require.NoError(t, err)
		components = append(components, c)
	}

	orderDate, deadline := fixtureDates()
	o, err := order.RestoreOrder(id, "ACME", "winch", orderDate, deadline,
		order.Active, nil, components)
	require.NoError(t, err)
	return o
}
