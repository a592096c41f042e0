package entity_test

import (
	"testing"
	"time"

	"scholarship-fund-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestScholarshipReference(t *testing.T) {
	awardDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "ABC123-20240315",
		entity.ScholarshipReference([]string{"ABC123"}, awardDate))

	assert.Equal(t, "ABC123-XY99-20240315",
		entity.ScholarshipReference([]string{"ABC123", "XY99"}, awardDate))

	// Empty codes are skipped, not rendered as empty segments.
	assert.Equal(t, "ABC123-Z1-20240315",
		entity.ScholarshipReference([]string{"ABC123", "", "Z1"}, awardDate))
}

func TestValidCurrencyAmount(t *testing.T) {
	assert.True(t, entity.ValidCurrencyAmount(100))
	assert.True(t, entity.ValidCurrencyAmount(0.01))
	assert.True(t, entity.ValidCurrencyAmount(2500.50))

	assert.False(t, entity.ValidCurrencyAmount(0))
	assert.False(t, entity.ValidCurrencyAmount(-10))
	assert.False(t, entity.ValidCurrencyAmount(10.999))
}

func TestScholarshipFinal(t *testing.T) {
	s := &entity.Scholarship{Status: entity.ScholarshipStatusPending, ApprovalCount: 1}
	assert.False(t, s.Final())

	s.ApprovalCount = entity.RequiredApprovals
	assert.True(t, s.Final())

	s = &entity.Scholarship{Status: entity.ScholarshipStatusCancelled, ApprovalCount: 0}
	assert.True(t, s.Final())
}

func TestUserCanApprove(t *testing.T) {
	u := &entity.User{Role: entity.UserRoleSuperAdmin, IsActive: true}
	assert.True(t, u.CanApprove())

	u.Role = entity.UserRoleAdmin
	assert.False(t, u.CanApprove())

	u = &entity.User{Role: entity.UserRoleSuperAdmin, IsActive: false}
	assert.False(t, u.CanApprove())
}
