package audit

import (
	"context"

	"github.com/google/uuid"
)

// Query filters audit records; nil fields match everything
type Query struct {
	Entity   *Entity
	EntityID *uuid.UUID
}

// Repository defines the interface for audit record persistence
type Repository interface {
	Save(ctx context.Context, record *Record) error
	// FindAll returns matching records newest first
	FindAll(ctx context.Context, query Query) ([]*Record, error)
}
