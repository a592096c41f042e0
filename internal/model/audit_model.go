package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditEvent struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ActorId      *uuid.UUID     `gorm:"type:uuid;index"`
	Action       string         `gorm:"type:varchar(50);not null;index"`
	ResourceType string         `gorm:"type:varchar(50);not null;index"`
	ResourceId   *uuid.UUID     `gorm:"type:uuid"`
	Detail       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
}

func (AuditEvent) TableName() string {
	return "audit_log"
}
