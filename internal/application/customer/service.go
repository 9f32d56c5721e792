package customer

import (
	"context"

	appaudit "github.com/ecommerce/backend/internal/application/audit"
	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles customer-related business operations
type Service struct {
	customerRepo customer.Repository
	orderRepo    order.Repository
	recorder     appaudit.Recorder
	txManager    shared.TransactionManager
}

// NewService creates a new customer Service
func NewService(customerRepo customer.Repository, orderRepo order.Repository, recorder appaudit.Recorder, txManager shared.TransactionManager) *Service {
	return &Service{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		recorder:     recorder,
		txManager:    txManager,
	}
}

// Create creates a new customer and records the creation in the audit trail
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest, actor string) (*CustomerResponse, error) {
	c, err := customer.NewCustomer(req.Name, req.TaxID)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByTaxID(ctx, c.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this tax id already exists")
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.customerRepo.Save(ctx, c); err != nil {
			return err
		}
		return s.recorder.Record(ctx, audit.EntityCustomer, c.ID, audit.ActionCreated, nil, c.Snapshot(), actor)
	})
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// GetAll retrieves all customers
func (s *Service) GetAll(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToCustomerResponses(customers), nil
}

// Update updates a customer, auditing the before and after snapshots
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest, actor string) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := c.Snapshot()

	if err := c.Update(req.Name, req.TaxID); err != nil {
		return nil, err
	}

	if c.TaxID != before.TaxID {
		exists, err := s.customerRepo.ExistsByTaxID(ctx, c.TaxID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this tax id already exists")
		}
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.customerRepo.Save(ctx, c); err != nil {
			return err
		}
		return s.recorder.Record(ctx, audit.EntityCustomer, c.ID, audit.ActionUpdated, before, c.Snapshot(), actor)
	})
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// Delete removes a customer. Customers referenced by orders cannot be deleted.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.orderRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("REFERENTIAL_CONFLICT", "Customer has orders and cannot be deleted")
	}

	return s.customerRepo.Delete(ctx, id)
}
