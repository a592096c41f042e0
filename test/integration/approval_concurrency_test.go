package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/internal/repository/unitofwork"
	"scholarship-fund-be/internal/service"
	"scholarship-fund-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Client{},
		&model.TreatmentCenter{},
		&model.Donation{},
		&model.Scholarship{},
		&model.ScholarshipApproval{},
		&model.AuditEvent{},
	))

	return db
}

func newScholarshipService(db *gorm.DB) service.IScholarshipService {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	auditService := service.NewAuditService(uowFactory, noopLogger{}, nil)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisherService := service.NewPublisherService(pubSub)
	return service.NewScholarshipService(uowFactory, auditService, publisherService)
}

func seedApprover(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	u := &model.User{
		Id:        uuid.New(),
		Email:     email,
		FullName:  "Integration Approver",
		Role:      entity.UserRoleSuperAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(u).Error)
	t.Cleanup(func() { db.Delete(u) })
	return u.Id
}

func seedPendingScholarship(t *testing.T, db *gorm.DB, creator uuid.UUID) uuid.UUID {
	t.Helper()

	client := &model.Client{
		Id:        uuid.New(),
		RefCode1:  fmt.Sprintf("IT%d", time.Now().UnixNano()),
		IsActive:  true,
		CreatedBy: creator,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(client).Error)
	t.Cleanup(func() { db.Delete(client) })

	center := &model.TreatmentCenter{
		Id:        uuid.New(),
		Name:      fmt.Sprintf("Integration Center %d", time.Now().UnixNano()),
		City:      "Portland",
		State:     "OR",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(center).Error)
	t.Cleanup(func() { db.Delete(center) })

	s := &model.Scholarship{
		Id:                uuid.New(),
		Reference:         fmt.Sprintf("%s-20240315", client.RefCode1),
		ClientId:          client.Id,
		TreatmentCenterId: center.Id,
		Amount:            1000,
		AwardDate:         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Insurance:         entity.InsuranceNoInsurance,
		Purpose:           entity.PurposeNoInsurance,
		Status:            entity.ScholarshipStatusPending,
		ApprovalCount:     0,
		CreatedBy:         creator,
		CreatedAt:         time.Now(),
	}
	require.NoError(t, db.Create(s).Error)
	t.Cleanup(func() {
		db.Where("scholarship_id = ?", s.Id).Delete(&model.ScholarshipApproval{})
		db.Delete(s)
	})

	return s.Id
}

// Two distinct approvers racing on the same scholarship must both land,
// and the scholarship must end at exactly two approvals, approved.
func TestConcurrentDualApproval(t *testing.T) {
	db := setupIntegrationDB(t)
	svc := newScholarshipService(db)
	ctx := context.Background()

	a1 := seedApprover(t, db, fmt.Sprintf("a1-%d@it.test", time.Now().UnixNano()))
	a2 := seedApprover(t, db, fmt.Sprintf("a2-%d@it.test", time.Now().UnixNano()))
	scholarshipId := seedPendingScholarship(t, db, a1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, approver := range []uuid.UUID{a1, a2} {
		wg.Add(1)
		go func(i int, approver uuid.UUID) {
			defer wg.Done()
			_, errs[i] = svc.RecordApproval(ctx, approver, scholarshipId, &dto.RecordApprovalRequest{})
		}(i, approver)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var stored model.Scholarship
	require.NoError(t, db.First(&stored, "id = ?", scholarshipId).Error)
	assert.Equal(t, entity.ScholarshipStatusApproved, stored.Status)
	assert.Equal(t, 2, stored.ApprovalCount)

	var approvals int64
	require.NoError(t, db.Model(&model.ScholarshipApproval{}).
		Where("scholarship_id = ?", scholarshipId).Count(&approvals).Error)
	assert.EqualValues(t, 2, approvals)
}

// Many approvers hammering the same scholarship: exactly two votes land,
// the rest get AlreadyFinal, and the counter never exceeds the cap.
func TestApprovalCountNeverExceedsCapUnderLoad(t *testing.T) {
	db := setupIntegrationDB(t)
	svc := newScholarshipService(db)
	ctx := context.Background()

	const racers = 8
	approvers := make([]uuid.UUID, racers)
	for i := range approvers {
		approvers[i] = seedApprover(t, db, fmt.Sprintf("racer%d-%d@it.test", i, time.Now().UnixNano()))
	}
	scholarshipId := seedPendingScholarship(t, db, approvers[0])

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i, approver := range approvers {
		wg.Add(1)
		go func(i int, approver uuid.UUID) {
			defer wg.Done()
			_, errs[i] = svc.RecordApproval(ctx, approver, scholarshipId, &dto.RecordApprovalRequest{})
		}(i, approver)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 2, succeeded)

	var stored model.Scholarship
	require.NoError(t, db.First(&stored, "id = ?", scholarshipId).Error)
	assert.Equal(t, 2, stored.ApprovalCount)
	assert.Equal(t, entity.ScholarshipStatusApproved, stored.Status)

	var approvals int64
	require.NoError(t, db.Model(&model.ScholarshipApproval{}).
		Where("scholarship_id = ?", scholarshipId).Count(&approvals).Error)
	assert.EqualValues(t, 2, approvals)
}
