package mapper

import (
	"encoding/json"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"

	"gorm.io/datatypes"
)

type AuditEventMapper struct{}

func NewAuditEventMapper() *AuditEventMapper {
	return &AuditEventMapper{}
}

func (m *AuditEventMapper) ToEntity(e *model.AuditEvent) *entity.AuditEvent {
	if e == nil {
		return nil
	}

	var detail map[string]interface{}
	if len(e.Detail) > 0 {
		// Best effort; a malformed payload surfaces as an empty detail map.
		_ = json.Unmarshal(e.Detail, &detail)
	}

	return &entity.AuditEvent{
		Id:           e.Id,
		ActorId:      e.ActorId,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceId:   e.ResourceId,
		Detail:       detail,
		CreatedAt:    e.CreatedAt,
	}
}

func (m *AuditEventMapper) ToModel(e *entity.AuditEvent) *model.AuditEvent {
	if e == nil {
		return nil
	}

	var detail datatypes.JSON
	if e.Detail != nil {
		if raw, err := json.Marshal(e.Detail); err == nil {
			detail = raw
		}
	}

	return &model.AuditEvent{
		Id:           e.Id,
		ActorId:      e.ActorId,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceId:   e.ResourceId,
		Detail:       detail,
		CreatedAt:    e.CreatedAt,
	}
}

func (m *AuditEventMapper) ToEntities(models []*model.AuditEvent) []*entity.AuditEvent {
	entities := make([]*entity.AuditEvent, 0, len(models))
	for _, e := range models {
		entities = append(entities, m.ToEntity(e))
	}
	return entities
}
