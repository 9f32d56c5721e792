package persistence

import (
	"context"

	"github.com/ecommerce/backend/internal/domain/order"
	"github.com/ecommerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order together with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := dbFromContext(ctx, r.db).Preload("Items").First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns orders newest first, optionally filtered by status
func (r *GormOrderRepository) FindAll(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	query := dbFromContext(ctx, r.db).Preload("Items").Order("order_date desc")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var orderModels []models.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, translateError(err)
	}

	orders := make([]*order.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = model.ToDomain()
	}
	return orders, nil
}

// Save creates or updates an order and its items
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	var model models.OrderModel
	model.FromDomain(o)
	err := dbFromContext(ctx, r.db).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&model).Error
	return translateError(err)
}

// CountByCustomer reports how many orders reference the customer
func (r *GormOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&models.OrderModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// CountItemsByProduct reports how many order lines reference the product
func (r *GormOrderRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&models.OrderItemModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
