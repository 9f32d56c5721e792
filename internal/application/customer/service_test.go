package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

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

// Verify interface compliance
var _ customer.Repository = (*MockCustomerRepository)(nil)

// MockOrderRepository is a mock implementation of order.Repository.
// Only the methods needed for customer delete validation are exercised.
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

// =============================================================================
// Test Helper Functions
// =============================================================================

func newTestService() (*Service, *MockCustomerRepository, *MockOrderRepository, *MockRecorder) {
	customerRepo := new(MockCustomerRepository)
	orderRepo := new(MockOrderRepository)
	recorder := new(MockRecorder)
	service := NewService(customerRepo, orderRepo, recorder, fakeTxManager{})
	return service, customerRepo, orderRepo, recorder
}

func createTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Maria Silva", "52998224725")
	if err != nil {
		t.Fatalf("creating test customer: %v", err)
	}
	return c
}

// =============================================================================
// Service Tests
// =============================================================================

func TestCustomerService_Create_Success(t *testing.T) {
	service, customerRepo, _, recorder := newTestService()

	ctx := context.Background()
	req := CreateCustomerRequest{Name: "Maria Silva", TaxID: "529.982.247-25"}

	customerRepo.On("ExistsByTaxID", ctx, "52998224725").Return(false, nil)
	customerRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil)
	recorder.On("Record", ctx, audit.EntityCustomer, mock.AnythingOfType("uuid.UUID"),
		audit.ActionCreated, nil, mock.AnythingOfType("customer.Snapshot"), "admin@local").Return(nil)

	result, err := service.Create(ctx, req, "admin@local")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Maria Silva", result.Name)
	assert.Equal(t, "52998224725", result.TaxID)
	customerRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestCustomerService_Create_DuplicateTaxID(t *testing.T) {
	service, customerRepo, _, _ := newTestService()

	ctx := context.Background()
	req := CreateCustomerRequest{Name: "Maria Silva", TaxID: "52998224725"}

	customerRepo.On("ExistsByTaxID", ctx, "52998224725").Return(true, nil)

	result, err := service.Create(ctx, req, "admin@local")

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	customerRepo.AssertExpectations(t)
}

func TestCustomerService_Create_InvalidTaxID(t *testing.T) {
	service, customerRepo, _, _ := newTestService()

	ctx := context.Background()
	req := CreateCustomerRequest{Name: "Maria Silva", TaxID: "12345678900"}

	result, err := service.Create(ctx, req, "admin@local")

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TAX_ID", domainErr.Code)
	customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_SaveFailureSkipsAudit(t *testing.T) {
	service, customerRepo, _, recorder := newTestService()

	ctx := context.Background()
	req := CreateCustomerRequest{Name: "Maria Silva", TaxID: "52998224725"}

	customerRepo.On("ExistsByTaxID", ctx, "52998224725").Return(false, nil)
	customerRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(errors.New("db down"))

	result, err := service.Create(ctx, req, "admin@local")

	assert.Error(t, err)
	assert.Nil(t, result)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_GetByID_Success(t *testing.T) {
	service, customerRepo, _, _ := newTestService()

	ctx := context.Background()
	c := createTestCustomer(t)

	customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)

	result, err := service.GetByID(ctx, c.ID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, c.ID, result.ID)
	assert.Equal(t, "Maria Silva", result.Name)
	customerRepo.AssertExpectations(t)
}

func TestCustomerService_GetByID_NotFound(t *testing.T) {
	service, customerRepo, _, _ := newTestService()

	ctx := context.Background()
	id := uuid.New()

	customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := service.GetByID(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	customerRepo.AssertExpectations(t)
}

func TestCustomerService_Update_Success(t *testing.T) {
	service, customerRepo, _, recorder := newTestService()

	ctx := context.Background()
	c := createTestCustomer(t)
	req := UpdateCustomerRequest{Name: "Maria Souza", TaxID: "11144477735"}

	customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
	customerRepo.On("ExistsByTaxID", ctx, "11144477735").Return(false, nil)
	customerRepo.On("Save", ctx, c).Return(nil)
	recorder.On("Record", ctx, audit.EntityCustomer, c.ID, audit.ActionUpdated,
		mock.AnythingOfType("customer.Snapshot"), mock.AnythingOfType("customer.Snapshot"), "admin@local").Return(nil)

	result, err := service.Update(ctx, c.ID, req, "admin@local")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "Maria Souza", result.Name)
	assert.Equal(t, "11144477735", result.TaxID)
	customerRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestCustomerService_Update_SameTaxIDSkipsUniquenessCheck(t *testing.T) {
	service, customerRepo, _, recorder := newTestService()

	ctx := context.Background()
	c := createTestCustomer(t)
	req := UpdateCustomerRequest{Name: "Maria Souza", TaxID: c.TaxID}

	customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
	customerRepo.On("Save", ctx, c).Return(nil)
	recorder.On("Record", ctx, audit.EntityCustomer, c.ID, audit.ActionUpdated,
		mock.AnythingOfType("customer.Snapshot"), mock.AnythingOfType("customer.Snapshot"), "admin@local").Return(nil)

	result, err := service.Update(ctx, c.ID, req, "admin@local")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	customerRepo.AssertNotCalled(t, "ExistsByTaxID", mock.Anything, mock.Anything)
}

func TestCustomerService_Update_DuplicateTaxID(t *testing.T) {
	service, customerRepo, _, _ := newTestService()

	ctx := context.Background()
	c := createTestCustomer(t)
	req := UpdateCustomerRequest{Name: "Maria Souza", TaxID: "11144477735"}

	customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
	customerRepo.On("ExistsByTaxID", ctx, "11144477735").Return(true, nil)

	result, err := service.Update(ctx, c.ID, req, "admin@local")

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCustomerService_Delete_Success(t *testing.T) {
	service, customerRepo, orderRepo, _ := newTestService()

	ctx := context.Background()
	c := createTestCustomer(t)

	customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
	orderRepo.On("CountByCustomer", ctx, c.ID).Return(int64(0), nil)
	customerRepo.On("Delete", ctx, c.ID).Return(nil)

	err := service.Delete(ctx, c.ID)

	assert.NoError(t, err)
	customerRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCustomerService_Delete_HasOrders(t *testing.T) {
	service, customerRepo, orderRepo, _ := newTestService()

	ctx := context.Background()
	c := createTestCustomer(t)

	customerRepo.On("FindByID", ctx, c.ID).Return(c, nil)
	orderRepo.On("CountByCustomer", ctx, c.ID).Return(int64(2), nil)

	err := service.Delete(ctx, c.ID)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "REFERENTIAL_CONFLICT", domainErr.Code)
	customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	service, customerRepo, orderRepo, _ := newTestService()

	ctx := context.Background()
	id := uuid.New()

	customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, id)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	orderRepo.AssertNotCalled(t, "CountByCustomer", mock.Anything, mock.Anything)
}
