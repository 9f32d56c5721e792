package persistence

import (
	"context"

	"github.com/ecommerce/backend/internal/domain/customer"
	"github.com/ecommerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements customer.Repository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDs finds customers matching the given IDs
func (r *GormCustomerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*customer.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var customerModels []models.CustomerModel
	if err := dbFromContext(ctx, r.db).Where("id IN ?", ids).Find(&customerModels).Error; err != nil {
		return nil, translateError(err)
	}

	customers := make([]*customer.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = model.ToDomain()
	}
	return customers, nil
}

// FindAll finds all customers ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel
	if err := dbFromContext(ctx, r.db).Order("name asc").Find(&customerModels).Error; err != nil {
		return nil, translateError(err)
	}

	customers := make([]*customer.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = model.ToDomain()
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	var model models.CustomerModel
	model.FromDomain(c)
	err := dbFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&model).Error
	return translateError(err)
}

// Delete removes a customer by ID
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

// ExistsByTaxID checks whether a customer with the given tax id exists
func (r *GormCustomerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&models.CustomerModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
