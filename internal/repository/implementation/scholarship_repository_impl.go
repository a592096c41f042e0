package implementation

import (
	"context"
	"errors"
	"time"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/mapper"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/internal/repository/contract"
	"scholarship-fund-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScholarshipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScholarshipMapper
}

func NewScholarshipRepository(db *gorm.DB) contract.ScholarshipRepository {
	return &ScholarshipRepositoryImpl{
		db:     db,
		mapper: mapper.NewScholarshipMapper(),
	}
}

func (r *ScholarshipRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScholarshipRepositoryImpl) Create(ctx context.Context, scholarship *entity.Scholarship) error {
	m := r.mapper.ToModel(scholarship)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scholarship = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScholarshipRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scholarship, error) {
	var m model.Scholarship
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScholarshipRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scholarship, error) {
	var models []*model.Scholarship
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// IncrementApprovalCount is the single atomic counter bump the approval
// workflow relies on. The guard clause caps the counter and refuses rows
// that already left pending, so two racing approvers both land their
// increment and a third voter cannot overcount. The post-increment value
// comes back from the same statement; callers must never compute it from
// a previously read snapshot.
func (r *ScholarshipRepositoryImpl) IncrementApprovalCount(ctx context.Context, id uuid.UUID) (int, bool, error) {
	var count int
	res := r.db.WithContext(ctx).Raw(
		`UPDATE scholarships
		 SET approval_count = approval_count + 1, updated_at = ?
		 WHERE id = ? AND status = ? AND approval_count < ?
		 RETURNING approval_count`,
		time.Now(), id, entity.ScholarshipStatusPending, entity.RequiredApprovals,
	).Scan(&count)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return count, true, nil
}

func (r *ScholarshipRepositoryImpl) MarkApproved(ctx context.Context, id uuid.UUID) error {
	_, err := r.UpdateStatus(ctx, id, entity.ScholarshipStatusPending, entity.ScholarshipStatusApproved)
	return err
}

func (r *ScholarshipRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Scholarship{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type ScholarshipApprovalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScholarshipApprovalMapper
}

func NewScholarshipApprovalRepository(db *gorm.DB) contract.ScholarshipApprovalRepository {
	return &ScholarshipApprovalRepositoryImpl{
		db:     db,
		mapper: mapper.NewScholarshipApprovalMapper(),
	}
}

func (r *ScholarshipApprovalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ScholarshipApprovalRepositoryImpl) Create(ctx context.Context, approval *entity.ScholarshipApproval) error {
	m := r.mapper.ToModel(approval)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*approval = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScholarshipApprovalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScholarshipApproval, error) {
	var models []*model.ScholarshipApproval
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ScholarshipApprovalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ScholarshipApproval{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
