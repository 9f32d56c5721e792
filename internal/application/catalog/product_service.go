package catalog

import (
	"context"

	appaudit "github.com/ecommerce/backend/internal/application/audit"
	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.Repository
	orderRepo   order.Repository
	recorder    appaudit.Recorder
	txManager   shared.TransactionManager
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.Repository, orderRepo order.Repository, recorder appaudit.Recorder, txManager shared.TransactionManager) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		recorder:    recorder,
		txManager:   txManager,
	}
}

// Create creates a new product and records the creation in the audit trail
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest, actor string) (*ProductResponse, error) {
	p, err := catalog.NewProduct(req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.productRepo.Save(ctx, p); err != nil {
			return err
		}
		return s.recorder.Record(ctx, audit.EntityProduct, p.ID, audit.ActionCreated, nil, p.Snapshot(), actor)
	})
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// GetAll retrieves all products
func (s *ProductService) GetAll(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return ToProductResponses(products), nil
}

// Update updates a product, auditing the before and after snapshots.
// Existing order lines keep the price frozen at order-creation time.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest, actor string) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := p.Snapshot()

	if err := p.Update(req.Name, req.Price); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.productRepo.Save(ctx, p); err != nil {
			return err
		}
		return s.recorder.Record(ctx, audit.EntityProduct, p.ID, audit.ActionUpdated, before, p.Snapshot(), actor)
	})
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(p)
	return &response, nil
}

// Delete removes a product. Products referenced by order lines cannot be deleted.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.orderRepo.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("REFERENTIAL_CONFLICT", "Product is referenced by orders and cannot be deleted")
	}

	return s.productRepo.Delete(ctx, id)
}
