package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditEventResponse struct {
	Id           uuid.UUID              `json:"id"`
	ActorId      *uuid.UUID             `json:"actor_id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceId   *uuid.UUID             `json:"resource_id"`
	Detail       map[string]interface{} `json:"detail"`
	CreatedAt    time.Time              `json:"created_at"`
}
