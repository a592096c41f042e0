package entity

import (
	"time"

	"github.com/google/uuid"
)

// Audit action tags. The set mirrors what the dashboard records.
const (
	AuditActionCreate   = "CREATE"
	AuditActionUpdate   = "UPDATE"
	AuditActionApprove  = "APPROVE"
	AuditActionDisburse = "DISBURSE"
	AuditActionCancel   = "CANCEL"
	AuditActionLogin    = "LOGIN"
	AuditActionLogout   = "LOGOUT"
)

// AuditEvent is append-only: never updated, never deleted.
type AuditEvent struct {
	Id           uuid.UUID
	ActorId      *uuid.UUID // nil for system-initiated events
	Action       string
	ResourceType string
	ResourceId   *uuid.UUID
	Detail       map[string]interface{}
	CreatedAt    time.Time
}
