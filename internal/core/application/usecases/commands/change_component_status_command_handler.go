package commands

import (
	"context"

	"fabtrack/internal/core/domain/model/component"
)

// ChangeComponentStatusCommandHandler changes the fabrication status of one
// component. The ownership invariant is enforced before mutating: the
// component is looked up within the supplied order's component list, so a
// componentId belonging to a different order fails with not found.
// No sibling component is touched.
type ChangeComponentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeComponentStatusCommandHandler creates a handler for component
// status changes.
func NewChangeComponentStatusCommandHandler(uowFactory OrderUoWFactory) ChangeComponentStatusCommandHandler {
	return ChangeComponentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change and returns the updated component.
func (h *ChangeComponentStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeComponentStatusCommand,
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

	if err = target.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateComponent(ctx, cmd.OrderID(), target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
