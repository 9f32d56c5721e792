package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	customerapp "github.com/ecommerce/backend/internal/application/customer"
	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of customer.Repository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	args := m.Called(ctx, taxID)
	return args.Bool(0), args.Error(1)
}

var _ customer.Repository = (*MockCustomerRepository)(nil)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

var _ order.Repository = (*MockOrderRepository)(nil)

// MockRecorder is a mock audit recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, entity audit.Entity, entityID uuid.UUID, action audit.Action, before, after any, actor string) error {
	args := m.Called(ctx, entity, entityID, action, before, after, actor)
	return args.Error(0)
}

// fakeTxManager runs the function directly without a real transaction
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ shared.TransactionManager = fakeTxManager{}

func setupCustomerRouter() (*gin.Engine, *MockCustomerRepository, *MockOrderRepository, *MockRecorder) {
	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	recorder := new(MockRecorder)
	service := customerapp.NewService(customerRepo, orderRepo, recorder, fakeTxManager{})
	handler := NewCustomerHandler(service)

	router := gin.New()
	group := router.Group("/api/v1/customers")
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/:id", handler.GetByID)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)

	return router, customerRepo, orderRepo, recorder
}

func TestCustomerHandler_Create_Success(t *testing.T) {
	router, customerRepo, _, recorder := setupCustomerRouter()

	customerRepo.On("ExistsByTaxID", mock.Anything, "52998224725").Return(false, nil)
	customerRepo.On("Save", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil)
	recorder.On("Record", mock.Anything, audit.EntityCustomer, mock.AnythingOfType("uuid.UUID"),
		audit.ActionCreated, nil, mock.Anything, "system").Return(nil)

	body, _ := json.Marshal(customerapp.CreateCustomerRequest{Name: "Maria Silva", TaxID: "529.982.247-25"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Maria Silva", data["name"])
	assert.Equal(t, "52998224725", data["taxId"])
	customerRepo.AssertExpectations(t)
}

func TestCustomerHandler_Create_MissingFields(t *testing.T) {
	router, customerRepo, _, _ := setupCustomerRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader([]byte(`{"name":"Maria"}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerHandler_Create_InvalidTaxID(t *testing.T) {
	router, _, _, _ := setupCustomerRouter()

	body, _ := json.Marshal(customerapp.CreateCustomerRequest{Name: "Maria Silva", TaxID: "11111111111"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errInfo := response["error"].(map[string]interface{})
	assert.Equal(t, "ERR_INVALID_INPUT", errInfo["code"])
}

func TestCustomerHandler_GetByID_InvalidID(t *testing.T) {
	router, _, _, _ := setupCustomerRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/not-a-uuid", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_GetByID_NotFound(t *testing.T) {
	router, customerRepo, _, _ := setupCustomerRouter()

	id := uuid.New()
	customerRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+id.String(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerHandler_Delete_Conflict(t *testing.T) {
	router, customerRepo, orderRepo, _ := setupCustomerRouter()

	c, err := customer.NewCustomer("Maria Silva", "52998224725")
	require.NoError(t, err)

	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	orderRepo.On("CountByCustomer", mock.Anything, c.ID).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/customers/"+c.ID.String(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errInfo := response["error"].(map[string]interface{})
	assert.Equal(t, "ERR_REFERENTIAL_CONFLICT", errInfo["code"])
	customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCustomerHandler_Delete_Success(t *testing.T) {
	router, customerRepo, orderRepo, _ := setupCustomerRouter()

	c, err := customer.NewCustomer("Maria Silva", "52998224725")
	require.NoError(t, err)

	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	orderRepo.On("CountByCustomer", mock.Anything, c.ID).Return(int64(0), nil)
	customerRepo.On("Delete", mock.Anything, c.ID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/customers/"+c.ID.String(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	customerRepo.AssertExpectations(t)
}
