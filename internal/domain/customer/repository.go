package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for customer persistence
type Repository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByIDs finds multiple customers by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Customer, error)

	// FindAll returns all customers ordered by name
	FindAll(ctx context.Context) ([]*Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByTaxID checks if a customer with the given tax id exists
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}
