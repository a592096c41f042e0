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

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "s3cret-pass")

	res, err := env.auth.Login(ctx, &dto.LoginRequest{
		Email:    "Admin@Fund.org",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "admin@fund.org", res.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "s3cret-pass")

	_, err := env.auth.Login(ctx, &dto.LoginRequest{
		Email:    "admin@fund.org",
		Password: "wrong",
	})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestLoginThrottleAfterRepeatedFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "s3cret-pass")

	req := &dto.LoginRequest{Email: "admin@fund.org", Password: "wrong"}
	for i := 0; i < 3; i++ {
		_, err := env.auth.Login(ctx, req)
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	}

	// Even the correct password is refused while the window is active.
	_, err := env.auth.Login(ctx, &dto.LoginRequest{
		Email:    "admin@fund.org",
		Password: "s3cret-pass",
	})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestLoginInactiveUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id := seedUser(t, env.db, "admin@fund.org", entity.UserRoleAdmin, "s3cret-pass")
	require.NoError(t, env.db.Table("users").Where("id = ?", id).Update("is_active", false).Error)

	_, err := env.auth.Login(ctx, &dto.LoginRequest{
		Email:    "admin@fund.org",
		Password: "s3cret-pass",
	})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}
