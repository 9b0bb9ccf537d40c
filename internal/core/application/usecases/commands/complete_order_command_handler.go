package commands

import (
	"context"
	"time"

	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/core/domain/services"
	"fabtrack/internal/pkg/errs"
)

// CompleteOrderCommandHandler handles the completion transition.
//
// The readiness check and the completion write happen inside one transaction,
// so the decision is always made against the freshest component states and a
// concurrent component update cannot slip between check and commit.
//
// Completion cascades the completed status to every component through the
// aggregate and a single repository write.
//
// Re-completing an already completed order is an idempotent no-op that
// returns the unchanged aggregate; the state-conflict error is reserved for
// the readiness gate.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	aggregator services.StatusAggregator

	// requireReady gates completion on every component being completed.
	// False restores the permissive legacy behavior that allowed forcing
	// completion regardless of readiness.
	requireReady bool

	// now is the clock used for the completion timestamp.
	now func() time.Time
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// requireReady selects between the readiness-gated policy (true, default in
// configuration) and the permissive legacy policy (false).
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, requireReady bool) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory:   uowFactory,
		aggregator:   services.NewStatusAggregator(),
		requireReady: requireReady,
		now:          time.Now,
	}
}

// Handle processes the completion command and returns the completed order.
// Fails with an ObjectNotFoundError if the order does not exist and with a
// StateConflictError if the readiness gate rejects the transition.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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

	// Idempotent re-completion: same result, no error, nothing written.
	if aggregate.Status() == order.Completed {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return aggregate, nil
	}

	if h.requireReady && !h.aggregator.IsReadyToComplete(aggregate.Components()) {
		return nil, errs.NewStateConflictError("order is not ready to complete")
	}

	if err = aggregate.Complete(h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.CompleteCascade(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
