package commands

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// DispatchDueOrdersCommandHandler escalates today's unfinished orders to
// despachado once the dispatch hour has passed in the business zone.
//
// The sweep is idempotent: dispatched, delivered and cancelled orders are
// never selected, so running it from the job and from every listing is safe.
// Rows are locked by FindDueForDispatch, which serializes concurrent sweeps.
//
// Example:
//
//	handler := NewDispatchDueOrdersCommandHandler(uowFactory, clock, policy)
//	n, err := handler.Handle(ctx, NewDispatchDueOrdersCommand())
//	if errors.Is(err, kernel.ErrTimezoneUnavailable) {
//	    // skipped, nothing written
//	}
type DispatchDueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
	policy     services.AutoDispatchPolicy
}

func NewDispatchDueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	policy services.AutoDispatchPolicy,
) *DispatchDueOrdersCommandHandler {
	return &DispatchDueOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     policy,
	}
}

// Handle runs one sweep and returns how many orders were dispatched.
// When the business zone cannot be resolved it writes nothing and returns
// kernel.ErrTimezoneUnavailable.
func (h *DispatchDueOrdersCommandHandler) Handle(ctx context.Context, cmd DispatchDueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now, err := h.clock.NowInZone()
	if err != nil {
		return 0, err
	}
	if !h.policy.IsOpen(now) {
		return 0, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	due, err := orderRepo.FindDueForDispatch(ctx, kernel.DateOf(now), order.AutoDispatchableStatuses())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, o := range due {
		changed, applyErr := h.policy.Apply(o, now)
		if applyErr != nil {
			return 0, applyErr
		}
		if !changed {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		dispatched++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return dispatched, nil
}

// DispatchDue runs a sweep with a freshly constructed command.
func (h *DispatchDueOrdersCommandHandler) DispatchDue(ctx context.Context) (int, error) {
	return h.Handle(ctx, NewDispatchDueOrdersCommand())
}
