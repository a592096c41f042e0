package implementation

import (
	"context"
	"errors"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/mapper"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/internal/repository/contract"
	"scholarship-fund-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClientMapper
}

func NewClientRepository(db *gorm.DB) contract.ClientRepository {
	return &ClientRepositoryImpl{
		db:     db,
		mapper: mapper.NewClientMapper(),
	}
}

func (r *ClientRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, client *entity.Client) error {
	m := r.mapper.ToModel(client)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*client = *r.mapper.ToEntity(m)
	return nil
}

// Deactivate soft-disables the client. Clients are never hard-deleted:
// scholarships keep referencing them.
func (r *ClientRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *ClientRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error) {
	var m model.Client
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClientRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error) {
	var models []*model.Client
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type TreatmentCenterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TreatmentCenterMapper
}

func NewTreatmentCenterRepository(db *gorm.DB) contract.TreatmentCenterRepository {
	return &TreatmentCenterRepositoryImpl{
		db:     db,
		mapper: mapper.NewTreatmentCenterMapper(),
	}
}

func (r *TreatmentCenterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TreatmentCenterRepositoryImpl) Create(ctx context.Context, center *entity.TreatmentCenter) error {
	m := r.mapper.ToModel(center)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*center = *r.mapper.ToEntity(m)
	return nil
}

func (r *TreatmentCenterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TreatmentCenter, error) {
	var m model.TreatmentCenter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TreatmentCenterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TreatmentCenter, error) {
	var models []*model.TreatmentCenter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
