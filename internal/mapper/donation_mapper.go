package mapper

import (
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"
)

type DonationMapper struct{}

func NewDonationMapper() *DonationMapper {
	return &DonationMapper{}
}

func (m *DonationMapper) ToEntity(d *model.Donation) *entity.Donation {
	if d == nil {
		return nil
	}
	return &entity.Donation{
		Id:           d.Id,
		DonorName:    d.DonorName,
		Amount:       d.Amount,
		DonationDate: d.DonationDate,
		Method:       d.Method,
		CheckNumber:  d.CheckNumber,
		DonorEmail:   d.DonorEmail,
		DonorPhone:   d.DonorPhone,
		Notes:        d.Notes,
		ReceiptSent:  d.ReceiptSent,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *DonationMapper) ToModel(d *entity.Donation) *model.Donation {
	if d == nil {
		return nil
	}
	return &model.Donation{
		Id:           d.Id,
		DonorName:    d.DonorName,
		Amount:       d.Amount,
		DonationDate: d.DonationDate,
		Method:       d.Method,
		CheckNumber:  d.CheckNumber,
		DonorEmail:   d.DonorEmail,
		DonorPhone:   d.DonorPhone,
		Notes:        d.Notes,
		ReceiptSent:  d.ReceiptSent,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *DonationMapper) ToEntities(models []*model.Donation) []*entity.Donation {
	entities := make([]*entity.Donation, 0, len(models))
	for _, d := range models {
		entities = append(entities, m.ToEntity(d))
	}
	return entities
}
