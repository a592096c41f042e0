package mapper

import (
	"time"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"
)

type ScholarshipMapper struct{}

func NewScholarshipMapper() *ScholarshipMapper {
	return &ScholarshipMapper{}
}

func (m *ScholarshipMapper) ToEntity(s *model.Scholarship) *entity.Scholarship {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Scholarship{
		Id:                s.Id,
		Reference:         s.Reference,
		ClientId:          s.ClientId,
		TreatmentCenterId: s.TreatmentCenterId,
		Amount:            s.Amount,
		AwardDate:         s.AwardDate,
		Insurance:         s.Insurance,
		Purpose:           s.Purpose,
		Notes:             s.Notes,
		Status:            s.Status,
		ApprovalCount:     s.ApprovalCount,
		CreatedBy:         s.CreatedBy,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *ScholarshipMapper) ToModel(s *entity.Scholarship) *model.Scholarship {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Scholarship{
		Id:                s.Id,
		Reference:         s.Reference,
		ClientId:          s.ClientId,
		TreatmentCenterId: s.TreatmentCenterId,
		Amount:            s.Amount,
		AwardDate:         s.AwardDate,
		Insurance:         s.Insurance,
		Purpose:           s.Purpose,
		Notes:             s.Notes,
		Status:            s.Status,
		ApprovalCount:     s.ApprovalCount,
		CreatedBy:         s.CreatedBy,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *ScholarshipMapper) ToEntities(models []*model.Scholarship) []*entity.Scholarship {
	entities := make([]*entity.Scholarship, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ToEntity(s))
	}
	return entities
}

type ScholarshipApprovalMapper struct{}

func NewScholarshipApprovalMapper() *ScholarshipApprovalMapper {
	return &ScholarshipApprovalMapper{}
}

func (m *ScholarshipApprovalMapper) ToEntity(a *model.ScholarshipApproval) *entity.ScholarshipApproval {
	if a == nil {
		return nil
	}
	return &entity.ScholarshipApproval{
		Id:            a.Id,
		ScholarshipId: a.ScholarshipId,
		ApproverId:    a.ApproverId,
		Comment:       a.Comment,
		CreatedAt:     a.CreatedAt,
	}
}

func (m *ScholarshipApprovalMapper) ToModel(a *entity.ScholarshipApproval) *model.ScholarshipApproval {
	if a == nil {
		return nil
	}
	return &model.ScholarshipApproval{
		Id:            a.Id,
		ScholarshipId: a.ScholarshipId,
		ApproverId:    a.ApproverId,
		Comment:       a.Comment,
		CreatedAt:     a.CreatedAt,
	}
}

func (m *ScholarshipApprovalMapper) ToEntities(models []*model.ScholarshipApproval) []*entity.ScholarshipApproval {
	entities := make([]*entity.ScholarshipApproval, 0, len(models))
	for _, a := range models {
		entities = append(entities, m.ToEntity(a))
	}
	return entities
}
