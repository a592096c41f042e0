package service_test

import (
	"context"
	"testing"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDonationCheckRequiresNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	_, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       100,
		DonationDate: "2024-01-10",
		Method:       entity.DonationMethodCheck,
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	checkNo := "1042"
	res, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       100,
		DonationDate: "2024-01-10",
		Method:       entity.DonationMethodCheck,
		CheckNumber:  &checkNo,
	})
	require.NoError(t, err)
	require.NotNil(t, res.CheckNumber)
	assert.Equal(t, "1042", *res.CheckNumber)
}

func TestRecordDonationRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	_, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       10.123,
		DonationDate: "2024-01-10",
		Method:       entity.DonationMethodCash,
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       100,
		DonationDate: "01/10/2024",
		Method:       entity.DonationMethodCash,
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       100,
		DonationDate: "2024-01-10",
		Method:       "bitcoin",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestSetReceiptSent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	donation, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Casey Miles",
		Amount:       250,
		DonationDate: "2024-02-01",
		Method:       entity.DonationMethodCreditCard,
	})
	require.NoError(t, err)
	assert.False(t, donation.ReceiptSent)

	updated, err := env.donations.SetReceiptSent(ctx, admin, donation.Id, &dto.SetReceiptSentRequest{ReceiptSent: true})
	require.NoError(t, err)
	assert.True(t, updated.ReceiptSent)
}

func TestDonationsOrderedByDateDesc(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	for _, d := range []string{"2024-01-10", "2024-03-05", "2024-02-01"} {
		_, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
			DonorName:    "Donor",
			Amount:       50,
			DonationDate: d,
			Method:       entity.DonationMethodCash,
		})
		require.NoError(t, err)
	}

	all, err := env.donations.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].DonationDate.After(all[1].DonationDate))
	assert.True(t, all[1].DonationDate.After(all[2].DonationDate))
}
