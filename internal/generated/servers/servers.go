// Package servers holds the HTTP contract of the orders API: the wire types
// described by openapi.yaml, the echo ServerInterface and the wrapper that
// binds path and query parameters before delegating to it.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for Origin.
const (
	OriginAutoservicio Origin = "autoservicio"
	OriginManual       Origin = "manual"
)

// Defines values for Status.
const (
	StatusCancelado    Status = "cancelado"
	StatusConfirmado   Status = "confirmado"
	StatusDespachado   Status = "despachado"
	StatusEnProduccion Status = "en_produccion"
	StatusEntregado    Status = "entregado"
	StatusPendiente    Status = "pendiente"
)

// Defines values for Unit.
const (
	UnitBandeja Unit = "bandeja"
	UnitDocena  Unit = "docena"
	UnitKg      Unit = "kg"
	UnitLitro   Unit = "litro"
	UnitUnidad  Unit = "unidad"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CasinoId        int64          `json:"casino_id"`
	ChoferId        *int64         `json:"chofer_id,omitempty"`
	Detalles        []NewOrderLine `json:"detalles"`
	DiasRecurrencia *[]string      `json:"dias_recurrencia,omitempty"`
	FechaEntrega    string         `json:"fecha_entrega"`
	HoraEntrega     string         `json:"hora_entrega"`
	Notas           *string        `json:"notas,omitempty"`
	Origen          *Origin        `json:"origen,omitempty"`
	Recurrente      *bool          `json:"recurrente,omitempty"`
}

// NewOrderLine defines model for NewOrderLine.
type NewOrderLine struct {
	Cantidad       float64 `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	ProductoId     int64   `json:"producto_id"`
	ProductoNombre *string `json:"producto_nombre,omitempty"`
	Unidad         *Unit   `json:"unidad,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CasinoId        int64       `json:"casino_id"`
	ChoferId        *int64      `json:"chofer_id,omitempty"`
	CreadoEn        time.Time   `json:"creado_en"`
	Detalles        []OrderLine `json:"detalles"`
	DiasRecurrencia []string    `json:"dias_recurrencia"`
	EmailEnviado    bool        `json:"email_enviado"`
	EmpresaId       int64       `json:"empresa_id"`
	Estado          Status      `json:"estado"`
	FechaEntrega    string      `json:"fecha_entrega"`
	FechaPedido     string      `json:"fecha_pedido"`
	HoraEntrega     string      `json:"hora_entrega"`
	Id              int64       `json:"id"`
	MensajeEnviado  bool        `json:"mensaje_enviado"`
	Notas           string      `json:"notas"`
	Origen          Origin      `json:"origen"`
	Recurrente      bool        `json:"recurrente"`
	Total           float64     `json:"total"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	Cantidad       float64 `json:"cantidad"`
	Id             int64   `json:"id"`
	PedidoId       int64   `json:"pedido_id"`
	PrecioUnitario float64 `json:"precio_unitario"`
	ProductoId     int64   `json:"producto_id"`
	ProductoNombre string  `json:"producto_nombre"`
	Subtotal       float64 `json:"subtotal"`
	Unidad         Unit    `json:"unidad"`
}

// OrderPatch defines model for OrderPatch.
type OrderPatch struct {
	ChoferId        *int64          `json:"chofer_id,omitempty"`
	Detalles        *[]NewOrderLine `json:"detalles,omitempty"`
	DiasRecurrencia *[]string       `json:"dias_recurrencia,omitempty"`
	EmailEnviado    *bool           `json:"email_enviado,omitempty"`
	Estado          *Status         `json:"estado,omitempty"`
	FechaEntrega    *string         `json:"fecha_entrega,omitempty"`
	HoraEntrega     *string         `json:"hora_entrega,omitempty"`
	MensajeEnviado  *bool           `json:"mensaje_enviado,omitempty"`
	Notas           *string         `json:"notas,omitempty"`
	Origen          *Origin         `json:"origen,omitempty"`
	Recurrente      *bool           `json:"recurrente,omitempty"`
}

// Origin defines model for Origin.
type Origin string

// Status defines model for Status.
type Status string

// Success defines model for Success.
type Success struct {
	Success bool `json:"success"`
}

// Unit defines model for Unit.
type Unit string

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	FechaEntrega *string `form:"fecha_entrega,omitempty" json:"fecha_entrega,omitempty"`
	CasinoId     *int64  `form:"casino_id,omitempty" json:"casino_id,omitempty"`
	EmpresaId    *int64  `form:"empresa_id,omitempty" json:"empresa_id,omitempty"`
	Estado       *Status `form:"estado,omitempty" json:"estado,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = OrderPatch

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, dispatching today's orders once the dispatch hour has passed
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order for a customer location
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Cancel an order; lines and total are kept
	// (DELETE /orders/{id})
	CancelOrder(ctx echo.Context, id int64) error
	// Fetch one order with its lines
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// Patch an order; detalles replaces every line
	// (PATCH /orders/{id})
	UpdateOrder(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "fecha_entrega", ctx.QueryParams(), &params.FechaEntrega)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter fecha_entrega: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "casino_id", ctx.QueryParams(), &params.CasinoId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter casino_id: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "empresa_id", ctx.QueryParams(), &params.EmpresaId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter empresa_id: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "estado", ctx.QueryParams(), &params.Estado)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter estado: %s", err))
	}

	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	err = w.Handler.CreateOrder(ctx)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	err = w.Handler.CancelOrder(ctx, id)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	err = w.Handler.GetOrder(ctx, id)
	return err
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	err = w.Handler.UpdateOrder(ctx, id)
	return err
}

func bindOrderID(ctx echo.Context) (int64, error) {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group that RegisterHandlers needs.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, prefixing every path with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/orders/:id", wrapper.CancelOrder)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:id", wrapper.UpdateOrder)
}
