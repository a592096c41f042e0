package unitofwork

import (
	"context"
	"fmt"

	"scholarship-fund-be/internal/repository/contract"
	"scholarship-fund-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClientRepository() contract.ClientRepository {
	return implementation.NewClientRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TreatmentCenterRepository() contract.TreatmentCenterRepository {
	return implementation.NewTreatmentCenterRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DonationRepository() contract.DonationRepository {
	return implementation.NewDonationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScholarshipRepository() contract.ScholarshipRepository {
	return implementation.NewScholarshipRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScholarshipApprovalRepository() contract.ScholarshipApprovalRepository {
	return implementation.NewScholarshipApprovalRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuditEventRepository() contract.AuditEventRepository {
	return implementation.NewAuditEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FinanceRepository() contract.FinanceRepository {
	return implementation.NewFinanceRepository(u.getDB())
}
