package mapper

import (
	"time"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"
)

type ClientMapper struct{}

func NewClientMapper() *ClientMapper {
	return &ClientMapper{}
}

func (m *ClientMapper) ToEntity(c *model.Client) *entity.Client {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Client{
		Id:        c.Id,
		RefCode1:  c.RefCode1,
		RefCode2:  c.RefCode2,
		RefCode3:  c.RefCode3,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ClientMapper) ToModel(c *entity.Client) *model.Client {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Client{
		Id:        c.Id,
		RefCode1:  c.RefCode1,
		RefCode2:  c.RefCode2,
		RefCode3:  c.RefCode3,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ClientMapper) ToEntities(models []*model.Client) []*entity.Client {
	entities := make([]*entity.Client, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

type TreatmentCenterMapper struct{}

func NewTreatmentCenterMapper() *TreatmentCenterMapper {
	return &TreatmentCenterMapper{}
}

func (m *TreatmentCenterMapper) ToEntity(c *model.TreatmentCenter) *entity.TreatmentCenter {
	if c == nil {
		return nil
	}
	return &entity.TreatmentCenter{
		Id:        c.Id,
		Name:      c.Name,
		City:      c.City,
		State:     c.State,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func (m *TreatmentCenterMapper) ToModel(c *entity.TreatmentCenter) *model.TreatmentCenter {
	if c == nil {
		return nil
	}
	return &model.TreatmentCenter{
		Id:        c.Id,
		Name:      c.Name,
		City:      c.City,
		State:     c.State,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func (m *TreatmentCenterMapper) ToEntities(models []*model.TreatmentCenter) []*entity.TreatmentCenter {
	entities := make([]*entity.TreatmentCenter, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}
