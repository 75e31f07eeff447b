package http

import (
	"errors"
	"log/slog"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		getOrderHandler:    getOrderHandler,
		logger:             logger.With("component", "http.Server"),
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(createOrderInput(body))
	if err != nil {
		return s.fail(ctx, "Invalid order data", err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// An unknown location or company is a problem with the request, not a missing resource.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.badRequest(ctx, "Invalid order data: "+err.Error())
		}
		return s.fail(ctx, "Failed to create order", err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(created))
}

// ListOrders handles GET /api/v1/orders - lists orders matching the filters.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	input := queries.ListOrdersInput{
		DeliveryDate:       params.FechaEntrega,
		CustomerLocationID: params.CasinoId,
		CompanyID:          params.EmpresaId,
	}
	if params.Estado != nil {
		estado := string(*params.Estado)
		input.Status = &estado
	}

	query, err := queries.NewListOrdersQuery(input)
	if err != nil {
		return s.fail(ctx, "Invalid filters", err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve orders", err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id} - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, "Invalid order id", err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "Failed to retrieve order", err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// UpdateOrder handles PATCH /api/v1/orders/{id} - patches an order and optionally replaces its lines.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(updateOrderInput(id, body))
	if err != nil {
		return s.fail(ctx, "Invalid order data", err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "Failed to update order", err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// CancelOrder handles DELETE /api/v1/orders/{id} - cancels an order without removing it.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, "Invalid order id", err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "Failed to cancel order", err)
	}

	return ctx.JSON(http.StatusOK, servers.Success{Success: true})
}

// fail maps use case errors onto HTTP statuses: validation 400, not found 404, anything else 500.
func (s *Server) fail(ctx echo.Context, message string, err error) error {
	switch {
	case errs.IsValidation(err):
		return s.badRequest(ctx, message+": "+err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"error", err,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
