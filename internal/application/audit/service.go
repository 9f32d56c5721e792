package audit

import (
	"context"
	"encoding/json"

	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder writes audit records for entity mutations
type Recorder interface {
	Record(ctx context.Context, entity audit.Entity, entityID uuid.UUID, action audit.Action, before, after any, actor string) error
}

// Service records and queries the audit trail
type Service struct {
	auditRepo audit.Repository
	logger    *zap.Logger
}

// NewService creates a new audit Service
func NewService(auditRepo audit.Repository, logger *zap.Logger) *Service {
	return &Service{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record serializes the before and after snapshots and persists an audit
// record. A nil before or after is stored as NULL.
func (s *Service) Record(ctx context.Context, entity audit.Entity, entityID uuid.UUID, action audit.Action, before, after any, actor string) error {
	beforeJSON, err := marshalSnapshot(before)
	if err != nil {
		return err
	}
	afterJSON, err := marshalSnapshot(after)
	if err != nil {
		return err
	}

	record := audit.NewRecord(entity, entityID, action, beforeJSON, afterJSON, actor)
	if err := s.auditRepo.Save(ctx, record); err != nil {
		return err
	}

	s.logger.Info("audit record written",
		zap.String("entity", string(entity)),
		zap.String("entity_id", entityID.String()),
		zap.String("action", string(action)),
		zap.String("actor", actor))

	return nil
}

// List retrieves audit records, newest first, optionally filtered
func (s *Service) List(ctx context.Context, filter ListFilter) ([]RecordResponse, error) {
	query := audit.Query{}
	if filter.EntityType != "" {
		entity := audit.Entity(filter.EntityType)
		query.Entity = &entity
	}
	if filter.EntityID != "" {
		id, err := uuid.Parse(filter.EntityID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid entity id")
		}
		query.EntityID = &id
	}

	records, err := s.auditRepo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	return ToRecordResponses(records), nil
}

func marshalSnapshot(snapshot any) (*string, error) {
	if snapshot == nil {
		return nil, nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}
