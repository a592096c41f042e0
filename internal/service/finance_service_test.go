package service_test

import (
	"context"
	"testing"

	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")
	approver1 := seedUser(t, env.db, "boss1@fund.org", entity.UserRoleSuperAdmin, "")
	approver2 := seedUser(t, env.db, "boss2@fund.org", entity.UserRoleSuperAdmin, "")
	clientId := seedClient(t, env.db, admin, "ABC123")
	centerId := seedCenter(t, env.db, "Harbor Recovery Center")

	_, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       600,
		DonationDate: "2024-01-10",
		Method:       entity.DonationMethodCash,
	})
	require.NoError(t, err)

	_, err = env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Casey Miles",
		Amount:       400,
		DonationDate: "2024-02-01",
		Method:       entity.DonationMethodWire,
	})
	require.NoError(t, err)

	// One scholarship stays pending, one goes all the way to disbursement.
	pending, err := env.scholarships.Create(ctx, admin, &dto.CreateScholarshipRequest{
		ClientId:          clientId,
		TreatmentCenterId: centerId,
		Amount:            200,
		AwardDate:         "2024-03-01",
		Insurance:         entity.InsuranceNoInsurance,
		Purpose:           entity.PurposeNoInsurance,
	})
	require.NoError(t, err)

	disbursed, err := env.scholarships.Create(ctx, admin, &dto.CreateScholarshipRequest{
		ClientId:          clientId,
		TreatmentCenterId: centerId,
		Amount:            300,
		AwardDate:         "2024-03-02",
		Insurance:         entity.InsuranceHighDeductible,
		Purpose:           entity.PurposeDeductible,
	})
	require.NoError(t, err)

	_, err = env.scholarships.RecordApproval(ctx, approver1, disbursed.Id, nil)
	require.NoError(t, err)
	_, err = env.scholarships.RecordApproval(ctx, approver2, disbursed.Id, nil)
	require.NoError(t, err)
	_, err = env.scholarships.Disburse(ctx, approver1, disbursed.Id)
	require.NoError(t, err)

	summary, err := env.finance.GetSummary(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 1000, summary.TotalDonations, 0.001)
	assert.InDelta(t, 300, summary.TotalDisbursed, 0.001)
	assert.InDelta(t, 200, summary.PendingCommitments, 0.001)
	assert.InDelta(t, 500, summary.AvailableBalance, 0.001)

	// Cancelling the pending award releases its commitment.
	_, err = env.scholarships.Cancel(ctx, approver1, pending.Id)
	require.NoError(t, err)

	summary, err = env.finance.GetSummary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0, summary.PendingCommitments, 0.001)
	assert.InDelta(t, 700, summary.AvailableBalance, 0.001)
}

func TestFinancialSummaryEmptyLedger(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.finance.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalDonations)
	assert.Zero(t, summary.TotalDisbursed)
	assert.Zero(t, summary.PendingCommitments)
	assert.Zero(t, summary.AvailableBalance)
}
