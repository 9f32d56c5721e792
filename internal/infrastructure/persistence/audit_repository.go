package persistence

import (
	"context"

	"github.com/ecommerce/backend/internal/domain/audit"
	"github.com/ecommerce/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAuditRepository implements audit.Repository using GORM
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Save appends an audit record. Records are never updated.
func (r *GormAuditRepository) Save(ctx context.Context, record *audit.Record) error {
	var model models.AuditRecordModel
	model.FromDomain(record)
	return translateError(dbFromContext(ctx, r.db).Create(&model).Error)
}

// FindAll returns matching records newest first
func (r *GormAuditRepository) FindAll(ctx context.Context, query audit.Query) ([]*audit.Record, error) {
	q := dbFromContext(ctx, r.db).Order("occurred_at desc")
	if query.Entity != nil {
		q = q.Where("entity_type = ?", string(*query.Entity))
	}
	if query.EntityID != nil {
		q = q.Where("entity_id = ?", *query.EntityID)
	}

	var recordModels []models.AuditRecordModel
	if err := q.Find(&recordModels).Error; err != nil {
		return nil, translateError(err)
	}

	records := make([]*audit.Record, len(recordModels))
	for i, model := range recordModels {
		records[i] = model.ToDomain()
	}
	return records, nil
}
