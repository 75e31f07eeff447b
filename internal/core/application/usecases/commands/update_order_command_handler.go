package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to existing orders.
// Header fields and the optional line replacement are persisted in one
// transaction, so the total never diverges from the stored lines.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle returns the order as persisted after the update, or
// errs.ObjectNotFoundError when it does not exist.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ApplyChanges(cmd.Changes()); err != nil {
		return nil, err
	}

	if drafts, ok := cmd.Lines(); ok {
		lineIDs, idErr := orderRepo.NextLineIDs(ctx, len(drafts))
		if idErr != nil {
			return nil, idErr
		}
		lines, buildErr := buildLines(existing.ID(), lineIDs, drafts)
		if buildErr != nil {
			return nil, buildErr
		}
		if err = existing.ReplaceLines(lines); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
