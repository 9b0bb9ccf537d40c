package commands

import (
	"context"

	"fabtrack/internal/core/domain/model/component"
)

// ChangeComponentDescriptionCommandHandler replaces the free-text description
// of one component, with the same ownership check as the status change: the
// component must belong to the supplied order.
type ChangeComponentDescriptionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeComponentDescriptionCommandHandler creates a handler for component
// description edits.
func NewChangeComponentDescriptionCommandHandler(
	uowFactory OrderUoWFactory,
) ChangeComponentDescriptionCommandHandler {
	return ChangeComponentDescriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the description change and returns the updated component.
func (h *ChangeComponentDescriptionCommandHandler) Handle(
	ctx context.Context, cmd ChangeComponentDescriptionCommand,
) (*component.Component, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	target, err := aggregate.ComponentByID(cmd.ComponentID())
	if err != nil {
		return nil, err
	}

	target.ChangeDescription(cmd.Description())

	if err = orderRepo.UpdateComponent(ctx, cmd.OrderID(), target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
