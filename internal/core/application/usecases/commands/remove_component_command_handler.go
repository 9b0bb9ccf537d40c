package commands

import (
	"context"
)

// RemoveComponentCommandHandler deletes a single component of an order.
// The ownership check runs through the aggregate: a component that belongs to
// a different order fails as not found, never as a silent success. The
// component delete and the order's recomputed aggregates share a transaction.
type RemoveComponentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveComponentCommandHandler creates a handler for component removal.
func NewRemoveComponentCommandHandler(uowFactory OrderUoWFactory) RemoveComponentCommandHandler {
	return RemoveComponentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveComponentCommandHandler) Handle(ctx context.Context, cmd RemoveComponentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = aggregate.RemoveComponent(cmd.ComponentID()); err != nil {
		return err
	}

	if err = orderRepo.DeleteComponent(ctx, cmd.OrderID(), cmd.ComponentID()); err != nil {
		return err
	}

	// Persist the recomputed quantity and total price on the order row.
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
