package models

import (
	"github.com/ecommerce/backend/internal/domain/customer"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	TaxID string `gorm:"type:varchar(11);not null;uniqueIndex:idx_customers_tax_id;column:tax_id"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		TaxID:      m.TaxID,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.BaseModel.FromDomain(c.BaseEntity)
	m.Name = c.Name
	m.TaxID = c.TaxID
}
