package models

import (
	"time"

	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/google/uuid"
)

// AuditRecordModel is the persistence model for audit trail entries.
// Rows are append-only.
type AuditRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	EntityType string    `gorm:"type:varchar(50);not null;index:idx_audit_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_entity"`
	Action     string    `gorm:"type:varchar(50);not null"`
	Before     *string   `gorm:"type:jsonb"`
	After      *string   `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"not null;index"`
	Actor      string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (AuditRecordModel) TableName() string {
	return "audit_records"
}

// ToDomain converts the persistence model to a domain Record.
func (m *AuditRecordModel) ToDomain() *audit.Record {
	return &audit.Record{
		ID:         m.ID,
		Entity:     audit.Entity(m.EntityType),
		EntityID:   m.EntityID,
		Action:     audit.Action(m.Action),
		Before:     m.Before,
		After:      m.After,
		OccurredAt: m.OccurredAt,
		Actor:      m.Actor,
	}
}

// FromDomain populates the persistence model from a domain Record.
func (m *AuditRecordModel) FromDomain(r *audit.Record) {
	m.ID = r.ID
	m.EntityType = string(r.Entity)
	m.EntityID = r.EntityID
	m.Action = string(r.Action)
	m.Before = r.Before
	m.After = r.After
	m.OccurredAt = r.OccurredAt
	m.Actor = r.Actor
}
