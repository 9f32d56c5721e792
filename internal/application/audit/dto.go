package audit

import (
	"time"

	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/google/uuid"
)

// ListFilter narrows an audit trail query
type ListFilter struct {
	EntityType string `form:"entityType" binding:"omitempty,oneof=Customer Product Order"`
	EntityID   string `form:"entityId"`
}

// RecordResponse represents an audit record in API responses
type RecordResponse struct {
	ID         uuid.UUID `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	Action     string    `json:"action"`
	Before     *string   `json:"before"`
	After      *string   `json:"after"`
	OccurredAt time.Time `json:"occurredAt"`
	Actor      string    `json:"actor"`
}

// ToRecordResponse converts a domain record to a response DTO
func ToRecordResponse(r *audit.Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EntityType: string(r.Entity),
		EntityID:   r.EntityID,
		Action:     string(r.Action),
		Before:     r.Before,
		After:      r.After,
		OccurredAt: r.OccurredAt,
		Actor:      r.Actor,
	}
}

// ToRecordResponses converts a list of domain records to response DTOs
func ToRecordResponses(records []*audit.Record) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToRecordResponse(r)
	}
	return responses
}
