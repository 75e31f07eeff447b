package commands

import (
	"context"
	"fmt"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// CreateOrderCommandHandler places new orders.
//
// The cutoff rule is checked against the business clock before any storage
// access. The location is then resolved inside the transaction, its company
// becomes the order's company, and the order and line ids are issued by the
// store so concurrent creates never collide.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, cutoff)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %d totals %s", created.ID(), created.Total())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	cutoff     services.CutoffPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	clock ports.Clock,
	cutoff services.CutoffPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		cutoff:     cutoff,
	}
}

// Handle creates the order and returns it as persisted.
// Nothing is written when the cutoff rule, the location lookup or line
// validation fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err := h.cutoff.Check(cmd.DeliveryDate(), now); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	location, err := uow.CustomerLocationRepository().Get(ctx, cmd.CustomerLocationID())
	if err != nil {
		return nil, err
	}
	if _, err = uow.CompanyRepository().Get(ctx, location.CompanyID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	drafts := cmd.Lines()
	lineIDs, err := orderRepo.NextLineIDs(ctx, len(drafts))
	if err != nil {
		return nil, err
	}
	lines, err := buildLines(orderID, lineIDs, drafts)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(orderID, location, cmd.Details(), now, lines)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func buildLines(orderID int64, ids []int64, drafts []order.LineDraft) ([]*order.LineItem, error) {
	if len(ids) != len(drafts) {
		return nil, fmt.Errorf("issued %d line ids for %d lines", len(ids), len(drafts))
	}
	lines := make([]*order.LineItem, 0, len(drafts))
	for i, draft := range drafts {
		line, err := order.NewLineItem(ids[i], orderID, draft)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
