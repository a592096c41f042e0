package contract

import (
	"context"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"
)

// AuditEventRepository is append-only. There is deliberately no update or
// delete operation.
type AuditEventRepository interface {
	Create(ctx context.Context, event *entity.AuditEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditEvent, error)
}
