package commands

import (
	"context"

	"fabtrack/internal/core/domain/model/component"
)

// AddComponentCommandHandler appends a component to an existing order.
// The component row and the order's recomputed aggregates are written in the
// same transaction.
type AddComponentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddComponentCommandHandler creates a handler for appending components.
func NewAddComponentCommandHandler(uowFactory OrderUoWFactory) AddComponentCommandHandler {
	return AddComponentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the appended component with its
// storage-assigned identity.
func (h *AddComponentCommandHandler) Handle(
	ctx context.Context, cmd AddComponentCommand,
) (*component.Component, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newComponent, err := component.NewComponent(cmd.Name(), cmd.Price(), cmd.Quantity())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddComponent(newComponent); err != nil {
		return nil, err
	}

	if err = orderRepo.AddComponent(ctx, aggregate.ID(), newComponent); err != nil {
		return nil, err
	}

	// Persist the recomputed quantity and total price on the order row.
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newComponent, nil
}
