package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() *time.Time
}

// BaseEntity provides common fields for all entities.
// UpdatedAt is nil until the entity is mutated for the first time.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp, nil if never updated
func (e *BaseEntity) GetUpdatedAt() *time.Time {
	return e.UpdatedAt
}

// Touch stamps the update timestamp
func (e *BaseEntity) Touch() {
	now := time.Now().UTC()
	e.UpdatedAt = &now
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}
