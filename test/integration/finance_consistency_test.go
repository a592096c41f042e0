package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/internal/repository/unitofwork"
	"scholarship-fund-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedApprovedScholarship(t *testing.T, db *gorm.DB, creator, clientId, centerId uuid.UUID, amount float64, ref string) uuid.UUID {
	t.Helper()

	s := &model.Scholarship{
		Id:                uuid.New(),
		Reference:         ref,
		ClientId:          clientId,
		TreatmentCenterId: centerId,
		Amount:            amount,
		AwardDate:         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Insurance:         entity.InsuranceNoInsurance,
		Purpose:           entity.PurposeNoInsurance,
		Status:            entity.ScholarshipStatusApproved,
		ApprovalCount:     entity.RequiredApprovals,
		CreatedBy:         creator,
		CreatedAt:         time.Now(),
	}
	require.NoError(t, db.Create(s).Error)
	t.Cleanup(func() { db.Delete(s) })
	return s.Id
}

// While scholarships move approved -> disbursed, every summary snapshot
// must count each award in exactly one bucket: the disbursed and committed
// sums always add up to the full scholarship total.
func TestFinancialSummaryConsistentUnderTransitions(t *testing.T) {
	db := setupIntegrationDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(db)
	financeSvc := service.NewFinanceService(uowFactory)
	scholarshipSvc := newScholarshipService(db)

	approver := seedApprover(t, db, fmt.Sprintf("fin-%d@it.test", time.Now().UnixNano()))

	client := &model.Client{
		Id:        uuid.New(),
		RefCode1:  fmt.Sprintf("FIN%d", time.Now().UnixNano()),
		IsActive:  true,
		CreatedBy: approver,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(client).Error)
	t.Cleanup(func() { db.Delete(client) })

	center := &model.TreatmentCenter{
		Id:        uuid.New(),
		Name:      fmt.Sprintf("Finance Center %d", time.Now().UnixNano()),
		City:      "Portland",
		State:     "OR",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(center).Error)
	t.Cleanup(func() { db.Delete(center) })

	const awards = 10
	const amount = 100.0
	ids := make([]uuid.UUID, awards)
	for i := range ids {
		ids[i] = seedApprovedScholarship(t, db, approver, client.Id, center.Id, amount,
			fmt.Sprintf("%s-2024031%d", client.RefCode1, i))
	}

	baseline, err := financeSvc.GetSummary(ctx)
	require.NoError(t, err)
	base := baseline.TotalDisbursed + baseline.PendingCommitments

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, id := range ids {
			if _, err := scholarshipSvc.Disburse(ctx, approver, id); err != nil {
				t.Errorf("disburse failed: %v", err)
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			summary, err := financeSvc.GetSummary(ctx)
			require.NoError(t, err)
			assert.InDelta(t, base, summary.TotalDisbursed+summary.PendingCommitments, 0.001)
			assert.InDelta(t, baseline.TotalDisbursed+awards*amount, summary.TotalDisbursed, 0.001)
			return
		default:
			summary, err := financeSvc.GetSummary(ctx)
			require.NoError(t, err)
			// A mid-transition award must never vanish from both buckets
			// or show up in both.
			assert.InDelta(t, base, summary.TotalDisbursed+summary.PendingCommitments, 0.001)
			assert.InDelta(t, summary.TotalDonations-summary.TotalDisbursed-summary.PendingCommitments,
				summary.AvailableBalance, 0.001)
		}
	}
}
