package catalog

import (
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog
type Product struct {
	shared.BaseEntity
	Name  string
	Price decimal.Decimal
}

// Snapshot is the audit snapshot of a product's mutable fields
type Snapshot struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewProduct creates a new product with required fields
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
	}, nil
}

// Update replaces the product's name and price and stamps the update timestamp.
// Price changes never propagate to existing order lines, which keep the
// unit price frozen at order-creation time.
func (p *Product) Update(name string, price decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Name = name
	p.Price = price
	p.Touch()

	return nil
}

// Snapshot returns the audit snapshot of the product's current state
func (p *Product) Snapshot() Snapshot {
	return Snapshot{Name: p.Name, Price: p.Price}
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Product price must be positive")
	}
	if price.Exponent() < -2 {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot have more than two decimal places")
	}
	return nil
}
