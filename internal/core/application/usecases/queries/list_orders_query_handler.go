package queries

import (
	"context"
	"errors"
	"log/slog"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// DueOrdersDispatcher runs one auto-dispatch sweep and reports how many
// orders it escalated.
type DueOrdersDispatcher interface {
	DispatchDue(ctx context.Context) (int, error)
}

// ListOrdersQueryHandler lists orders, first giving the auto-dispatch sweep a
// chance to run so that today's due orders are reported as despachado.
//
// The sweep is best-effort: its failures are logged and the listing is
// served from whatever state is stored.
type ListOrdersQueryHandler struct {
	reader     ports.OrderReader
	dispatcher DueOrdersDispatcher
	logger     *slog.Logger
}

// NewListOrdersQueryHandler creates the handler. dispatcher may be nil, in
// which case listings never trigger the sweep.
func NewListOrdersQueryHandler(
	reader ports.OrderReader,
	dispatcher DueOrdersDispatcher,
	logger *slog.Logger,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		reader:     reader,
		dispatcher: dispatcher,
		logger:     logger.With("component", "ListOrdersQueryHandler"),
	}
}

// Handle returns the matching orders with their lines, ordered by id. An
// empty result is an empty slice, never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	h.dispatchDue(ctx)

	orders, err := h.reader.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}

func (h ListOrdersQueryHandler) dispatchDue(ctx context.Context) {
	if h.dispatcher == nil {
		return
	}

	n, err := h.dispatcher.DispatchDue(ctx)
	switch {
	case errors.Is(err, kernel.ErrTimezoneUnavailable):
		h.logger.WarnContext(ctx, "auto-dispatch skipped, business timezone unavailable", "error", err)
	case err != nil:
		h.logger.ErrorContext(ctx, "auto-dispatch failed", "error", err)
	case n > 0:
		h.logger.InfoContext(ctx, "auto-dispatched orders", "count", n)
	}
}
