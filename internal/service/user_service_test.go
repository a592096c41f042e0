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

func TestCreateUserRequiresSuperAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")

	_, err := env.users.Create(ctx, admin, &dto.CreateUserRequest{
		FullName: "New Person",
		Email:    "new@fund.org",
		Role:     entity.UserRoleAdmin,
	})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestCreateUserSendsInvite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	boss := seedUser(t, env.db, "boss@fund.org", entity.UserRoleSuperAdmin, "")

	res, err := env.users.Create(ctx, boss, &dto.CreateUserRequest{
		FullName: "New Person",
		Email:    "New@Fund.org",
		Role:     entity.UserRoleAdmin,
	})
	require.NoError(t, err)

	// Email is normalized to lowercase before storage.
	assert.Equal(t, "new@fund.org", res.Email)
	assert.True(t, res.IsActive)
	require.Len(t, env.mailer.invites, 1)
	assert.Equal(t, "new@fund.org", env.mailer.invites[0])
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	boss := seedUser(t, env.db, "boss@fund.org", entity.UserRoleSuperAdmin, "")
	seedUser(t, env.db, "taken@fund.org", entity.UserRoleAdmin, "")

	// The unique index, not a pre-read, rejects the duplicate: the error
	// must map to a conflict rather than a store failure.
	_, err := env.users.Create(ctx, boss, &dto.CreateUserRequest{
		FullName: "New Person",
		Email:    "Taken@Fund.org",
		Role:     entity.UserRoleAdmin,
	})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Empty(t, env.mailer.invites)

	var count int64
	require.NoError(t, env.db.Table("users").Where("email = ?", "taken@fund.org").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	boss := seedUser(t, env.db, "boss@fund.org", entity.UserRoleSuperAdmin, "")

	_, err := env.users.Create(ctx, boss, &dto.CreateUserRequest{
		FullName: "New Person",
		Email:    "new@fund.org",
		Role:     "root",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestListUsersGated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "")
	boss := seedUser(t, env.db, "boss@fund.org", entity.UserRoleSuperAdmin, "")

	_, err := env.users.GetAll(ctx, admin)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	users, err := env.users.GetAll(ctx, boss)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
