package contract

import (
	"context"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ScholarshipRepository interface {
	Create(ctx context.Context, scholarship *entity.Scholarship) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scholarship, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scholarship, error)

	// IncrementApprovalCount bumps approval_count by one as a single atomic
	// statement, capped below the required-approvals threshold. It returns
	// the post-increment count, or applied=false when the scholarship was
	// already final (cap reached or no longer pending).
	IncrementApprovalCount(ctx context.Context, id uuid.UUID) (count int, applied bool, err error)

	// MarkApproved flips status pending -> approved. Idempotent: a repeat
	// call is a no-op.
	MarkApproved(ctx context.Context, id uuid.UUID) error

	// UpdateStatus sets the status when the current status matches from.
	// Returns applied=false when the row was not in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (applied bool, err error)
}

type ScholarshipApprovalRepository interface {
	// Create inserts one vote. A duplicate (scholarship, approver) pair
	// surfaces as gorm.ErrDuplicatedKey from the unique constraint.
	Create(ctx context.Context, approval *entity.ScholarshipApproval) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScholarshipApproval, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
