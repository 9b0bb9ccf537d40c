package ports

import (
	"context"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their owned components. Every multi-row operation (create with components,
// cascade completion, cascade delete) must be atomic: either all rows change
// or none do. Implementations surface a distinguishable not-found outcome
// (errs.ObjectNotFoundError) versus a generic storage failure.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its components
	// in one atomic create, and records the storage-assigned identities on
	// the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's descriptive fields and derived aggregates.
	// Status, completion timestamp and component rows are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// CompleteCascade persists the completion transition: order status and
	// completion timestamp plus the cascaded status of every component, as
	// one atomic write rather than N independent component updates.
	CompleteCascade(ctx context.Context, aggregate *order.Order) error

	// AddComponent persists a single component appended to an existing order.
	AddComponent(ctx context.Context, orderID int64, c *component.Component) error

	// UpdateComponent persists a component's status and description. The
	// component must belong to the given order; an existing component owned
	// by a different order fails as not found.
	UpdateComponent(ctx context.Context, orderID int64, c *component.Component) error

	// DeleteComponent removes a single component of the given order.
	DeleteComponent(ctx context.Context, orderID, componentID int64) error

	// DeleteComponentsByOrder removes all components of the given order and
	// reports how many rows were removed.
	DeleteComponentsByOrder(ctx context.Context, orderID int64) (int64, error)

	// Delete removes the order row. Callers cascade the components first;
	// both steps belong in one transaction.
	Delete(ctx context.Context, id int64) error

	// Get retrieves an order aggregate with its components by identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every order with its nested components.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
