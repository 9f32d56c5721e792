package order

import (
	"context"

	appaudit "github.com/ecommerce/backend/internal/application/audit"
	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/domain/catalog"
	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles order-related business operations
type Service struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	productRepo  catalog.Repository
	recorder     appaudit.Recorder
	txManager    shared.TransactionManager
	logger       *zap.Logger
}

// NewService creates a new order Service
func NewService(orderRepo order.Repository, customerRepo customer.Repository, productRepo catalog.Repository, recorder appaudit.Recorder, txManager shared.TransactionManager, logger *zap.Logger) *Service {
	return &Service{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		recorder:     recorder,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create validates the customer and products, freezes current product
// prices into the lines and persists the order atomically with its
// audit record.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest, actor string) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must have at least one item")
	}

	c, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(req.Items))
	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	o, err := order.NewOrder(c.ID)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		if err := o.AddItem(p.ID, p.Name, item.Quantity, p.Price); err != nil {
			return nil, err
		}
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		return s.recorder.Record(ctx, audit.EntityOrder, o.ID, audit.ActionCreated, nil, o.CreatedSnapshot(), actor)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("customer_id", c.ID.String()),
		zap.Int("items", len(o.Items)))

	response := ToOrderResponse(o, c)
	return &response, nil
}

// GetByID retrieves a full order with its lines
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := s.customerRepo.FindByID(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(o, c)
	return &response, nil
}

// GetAll lists orders newest first, optionally filtered by status
func (s *Service) GetAll(ctx context.Context, filter ListFilter) ([]OrderSummaryResponse, error) {
	var status *order.Status
	if filter.Status != "" {
		st := order.Status(filter.Status)
		if !st.IsValid() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid order status")
		}
		status = &st
	}

	orders, err := s.orderRepo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]bool, len(orders))
	for _, o := range orders {
		if !seen[o.CustomerID] {
			seen[o.CustomerID] = true
			customerIDs = append(customerIDs, o.CustomerID)
		}
	}

	names := make(map[uuid.UUID]string, len(customerIDs))
	if len(customerIDs) > 0 {
		customers, err := s.customerRepo.FindByIDs(ctx, customerIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			names[c.ID] = c.Name
		}
	}

	responses := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderSummaryResponse(o, names[o.CustomerID])
	}

	return responses, nil
}

// Pay transitions an order from Created to Paid
func (s *Service) Pay(ctx context.Context, id uuid.UUID, actor string) (*OrderResponse, error) {
	return s.transition(ctx, id, actor, (*order.Order).Pay)
}

// Cancel transitions an order from Created to Cancelled
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, actor string) (*OrderResponse, error) {
	return s.transition(ctx, id, actor, (*order.Order).Cancel)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, actor string, apply func(*order.Order) error) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := o.StatusSnapshot()

	if err := apply(o); err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Save(ctx, o); err != nil {
			return err
		}
		return s.recorder.Record(ctx, audit.EntityOrder, o.ID, audit.ActionStatusChanged, before, o.StatusSnapshot(), actor)
	})
	if err != nil {
		return nil, err
	}

	c, err := s.customerRepo.FindByID(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(o, c)
	return &response, nil
}
