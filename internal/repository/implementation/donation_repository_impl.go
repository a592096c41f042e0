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

type DonationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationRepository(db *gorm.DB) contract.DonationRepository {
	return &DonationRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DonationRepositoryImpl) Create(ctx context.Context, donation *entity.Donation) error {
	m := r.mapper.ToModel(donation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*donation = *r.mapper.ToEntity(m)
	return nil
}

func (r *DonationRepositoryImpl) SetReceiptSent(ctx context.Context, id uuid.UUID, sent bool) error {
	return r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ?", id).
		Update("receipt_sent", sent).Error
}

func (r *DonationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Donation, error) {
	var m model.Donation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DonationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Donation, error) {
	var models []*model.Donation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

