package servers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, doc.Validate(t.Context()))

	orders := doc.Paths.Find("/orders")
	require.NotNil(t, orders)
	assert.Equal(t, "CreateOrder", orders.Post.OperationID)
	assert.Equal(t, "ListOrders", orders.Get.OperationID)

	byID := doc.Paths.Find("/orders/{id}")
	require.NotNil(t, byID)
	assert.Equal(t, "UpdateOrder", byID.Patch.OperationID)
	assert.Equal(t, "CancelOrder", byID.Delete.OperationID)
}

func TestRegisterSwaggerDoc(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, servers.RegisterSwaggerDoc(doc))

	body, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
}

type MockServer struct {
	mock.Mock
}

func (m *MockServer) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	return m.Called(params).Error(0)
}

func (m *MockServer) CreateOrder(ctx echo.Context) error {
	return m.Called().Error(0)
}

func (m *MockServer) CancelOrder(ctx echo.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockServer) GetOrder(ctx echo.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockServer) UpdateOrder(ctx echo.Context, id int64) error {
	return m.Called(id).Error(0)
}

func TestRegisterHandlers_BindsParameters(t *testing.T) {
	e := echo.New()
	si := &MockServer{}
	servers.RegisterHandlersWithBaseURL(e, si, "/api/v1")

	date := "2024-06-11"
	casino := int64(7)
	estado := servers.StatusPendiente
	si.On("ListOrders", servers.ListOrdersParams{FechaEntrega: &date, CasinoId: &casino, Estado: &estado}).Return(nil).Once()
	si.On("GetOrder", int64(42)).Return(nil).Once()
	si.On("CancelOrder", int64(42)).Return(nil).Once()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/orders?fecha_entrega=2024-06-11&casino_id=7&estado=pendiente", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/orders/42", nil),
		httptest.NewRequest(http.MethodDelete, "/api/v1/orders/42", nil),
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, req.URL.String())
	}

	si.AssertExpectations(t)
}

func TestRegisterHandlers_RejectsMalformedParameters(t *testing.T) {
	e := echo.New()
	si := &MockServer{}
	servers.RegisterHandlers(e, si)

	for _, target := range []string{"/orders/abc", "/orders?casino_id=siete"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	si.AssertNotCalled(t, "GetOrder", mock.Anything)
	si.AssertNotCalled(t, "ListOrders", mock.Anything)
}
