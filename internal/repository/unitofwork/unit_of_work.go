package unitofwork

import (
	"context"

	"scholarship-fund-be/internal/repository/contract"
)

// UnitOfWork scopes repositories to one logical unit. After Begin, all
// repositories returned by the accessors share a single transaction until
// Commit or Rollback; without Begin they operate on the base connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ClientRepository() contract.ClientRepository
	TreatmentCenterRepository() contract.TreatmentCenterRepository
	DonationRepository() contract.DonationRepository
	ScholarshipRepository() contract.ScholarshipRepository
	ScholarshipApprovalRepository() contract.ScholarshipApprovalRepository
	AuditEventRepository() contract.AuditEventRepository
	FinanceRepository() contract.FinanceRepository
}
