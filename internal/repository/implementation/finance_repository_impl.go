package implementation

import (
	"context"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/contract"

	"gorm.io/gorm"
)

type FinanceRepositoryImpl struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) contract.FinanceRepository {
	return &FinanceRepositoryImpl{db: db}
}

// Totals runs as a single statement on purpose: under READ COMMITTED each
// statement sees one snapshot, so a scholarship flipping approved ->
// disbursed between separate sums could vanish from both. One statement
// cannot observe that gap.
func (r *FinanceRepositoryImpl) Totals(ctx context.Context) (*entity.FundTotals, error) {
	var row struct {
		Donated   float64
		Disbursed float64
		Committed float64
	}

	res := r.db.WithContext(ctx).Raw(
		`SELECT
		   (SELECT COALESCE(SUM(amount), 0) FROM donations) AS donated,
		   (SELECT COALESCE(SUM(amount), 0) FROM scholarships WHERE status = ?) AS disbursed,
		   (SELECT COALESCE(SUM(amount), 0) FROM scholarships WHERE status IN (?, ?)) AS committed`,
		entity.ScholarshipStatusDisbursed,
		entity.ScholarshipStatusPending,
		entity.ScholarshipStatusApproved,
	).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}

	return &entity.FundTotals{
		Donated:   row.Donated,
		Disbursed: row.Disbursed,
		Committed: row.Committed,
	}, nil
}
