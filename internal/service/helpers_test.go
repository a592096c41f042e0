package service_test

import (
	"testing"
	"time"

	"scholarship-fund-be/internal/model"
	"scholarship-fund-be/internal/repository/memory"
	"scholarship-fund-be/internal/repository/unitofwork"
	"scholarship-fund-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubMailer struct {
	invites []string
	notices []string
}

func (m *stubMailer) SendInvite(toEmail, fullName, tempPassword string) error {
	m.invites = append(m.invites, toEmail)
	return nil
}

func (m *stubMailer) SendApprovalNotice(toEmail, scholarshipRef string, amount float64) error {
	m.notices = append(m.notices, scholarshipRef)
	return nil
}

type testEnv struct {
	db           *gorm.DB
	auth         service.IAuthService
	clients      service.IClientService
	donations    service.IDonationService
	scholarships service.IScholarshipService
	finance      service.IFinanceService
	users        service.IUserService
	audit        service.IAuditService
	mailer       *stubMailer
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

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

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := noopLogger{}
	mail := &stubMailer{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisherService := service.NewPublisherService(pubSub)

	auditService := service.NewAuditService(uowFactory, sysLogger, nil)
	loginAttempts := memory.NewLoginAttemptRepository(time.Minute, 3)

	return &testEnv{
		db: db,
		auth: service.NewAuthService(
			uowFactory, loginAttempts, auditService, sysLogger, "test-secret", time.Hour,
		),
		clients:      service.NewClientService(uowFactory, auditService),
		donations:    service.NewDonationService(uowFactory, auditService),
		scholarships: service.NewScholarshipService(uowFactory, auditService, publisherService),
		finance:      service.NewFinanceService(uowFactory),
		users:        service.NewUserService(uowFactory, auditService, mail, sysLogger),
		audit:        auditService,
		mailer:       mail,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, role, password string) uuid.UUID {
	t.Helper()

	var hashStr *string
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		s := string(hash)
		hashStr = &s
	}

	u := &model.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: hashStr,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, db.Create(u).Error)
	return u.Id
}

func seedClient(t *testing.T, db *gorm.DB, createdBy uuid.UUID, codes ...string) uuid.UUID {
	t.Helper()

	c := &model.Client{
		Id:        uuid.New(),
		RefCode1:  codes[0],
		IsActive:  true,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if len(codes) > 1 {
		c.RefCode2 = &codes[1]
	}
	if len(codes) > 2 {
		c.RefCode3 = &codes[2]
	}
	require.NoError(t, db.Create(c).Error)
	return c.Id
}

func seedCenter(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	c := &model.TreatmentCenter{
		Id:        uuid.New(),
		Name:      name,
		City:      "Portland",
		State:     "OR",
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(c).Error)
	return c.Id
}
