package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID loads the order together with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindAll returns orders newest first, optionally filtered by status
	FindAll(ctx context.Context, status *Status) ([]*Order, error)
	Save(ctx context.Context, order *Order) error
	// CountByCustomer reports how many orders reference the customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// CountItemsByProduct reports how many order lines reference the product
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
