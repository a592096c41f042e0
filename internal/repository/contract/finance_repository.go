package contract

import (
	"context"

	"scholarship-fund-be/internal/entity"
)

type FinanceRepository interface {
	// Totals reads the donation total, the disbursed total and the
	// committed (pending + approved) total in one statement, so all three
	// reflect the same snapshot.
	Totals(ctx context.Context) (*entity.FundTotals, error)
}
