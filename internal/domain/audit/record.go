package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action identifies what happened to an entity
type Action string

const (
	ActionCreated       Action = "Criado"
	ActionUpdated       Action = "Atualizado"
	ActionStatusChanged Action = "StatusAlterado"
)

// Entity identifies which kind of entity a record refers to
type Entity string

const (
	EntityCustomer Entity = "Customer"
	EntityProduct  Entity = "Product"
	EntityOrder    Entity = "Order"
)

// Record is an immutable audit trail entry. Before and After hold
// JSON-serialized snapshots; Before is nil for creations.
type Record struct {
	ID         uuid.UUID
	Entity     Entity
	EntityID   uuid.UUID
	Action     Action
	Before     *string
	After      *string
	OccurredAt time.Time
	Actor      string
}

// NewRecord creates an audit record stamped with the current time
func NewRecord(entity Entity, entityID uuid.UUID, action Action, before, after *string, actor string) *Record {
	return &Record{
		ID:         uuid.New(),
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		Before:     before,
		After:      after,
		OccurredAt: time.Now().UTC(),
		Actor:      actor,
	}
}
