package implementation

import (
	"context"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/mapper"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/internal/repository/contract"
	"scholarship-fund-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AuditEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditEventMapper
}

func NewAuditEventRepository(db *gorm.DB) contract.AuditEventRepository {
	return &AuditEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditEventMapper(),
	}
}

func (r *AuditEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AuditEventRepositoryImpl) Create(ctx context.Context, event *entity.AuditEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuditEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditEvent, error) {
	var models []*model.AuditEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
