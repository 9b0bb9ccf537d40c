package commands

import (
	"context"

	"fabtrack/internal/core/domain/model/component"
	"fabtrack/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the component entities, derives the order aggregates from them, and
// persists order plus components atomically so a failure never leaves an
// orphaned partial order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %d created with %d components", created.ID(), len(created.Components()))
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order
// with storage-assigned identities. The transaction covers the order row and
// every component row.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	components := make([]*component.Component, 0, len(cmd.Components()))
	for _, input := range cmd.Components() {
		c, err := component.NewComponent(input.Name, input.Price, input.Quantity)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerName(), cmd.ProductName(), cmd.OrderDate(), cmd.Deadline(), components)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
