package service_test

import (
	"context"
	"testing"

	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrailRecordsOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")
	clientId := seedClient(t, env.db, admin, "ABC123")
	centerId := seedCenter(t, env.db, "Harbor Recovery Center")

	_, err := env.scholarships.Create(ctx, admin, createScholarshipRequest(clientId, centerId))
	require.NoError(t, err)

	recent, err := env.audit.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, recent)

	assert.Equal(t, entity.AuditActionCreate, recent[0].Action)
	assert.Equal(t, "scholarship", recent[0].ResourceType)
	require.NotNil(t, recent[0].ActorId)
	assert.Equal(t, admin, *recent[0].ActorId)
}

func TestAuditFailureDoesNotBlockOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	// Take the audit log away entirely. Business operations must still
	// succeed; the failure is logged and swallowed.
	require.NoError(t, env.db.Migrator().DropTable(&model.AuditEvent{}))

	res, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
		DonorName:    "Jordan Blake",
		Amount:       100,
		DonationDate: "2024-01-10",
		Method:       entity.DonationMethodCash,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "", res.Id.String())
}

func TestAuditRecentLimitClamped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	for i := 0; i < 25; i++ {
		_, err := env.donations.Record(ctx, admin, &dto.RecordDonationRequest{
			DonorName:    "Donor",
			Amount:       10,
			DonationDate: "2024-01-10",
			Method:       entity.DonationMethodCash,
		})
		require.NoError(t, err)
	}

	recent, err := env.audit.GetRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 20)

	recent, err = env.audit.GetRecent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}
