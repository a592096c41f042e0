package bootstrap

import (
	"log"
	"time"

	"scholarship-fund-be/internal/config"
	"scholarship-fund-be/internal/controller"
	"scholarship-fund-be/internal/pkg/logger"
	"scholarship-fund-be/internal/pkg/mailer"
	"scholarship-fund-be/internal/repository/memory"
	"scholarship-fund-be/internal/repository/unitofwork"
	"scholarship-fund-be/internal/service"
	pktNats "scholarship-fund-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	ClientController      controller.IClientController
	CenterController      controller.ICenterController
	DonationController    controller.IDonationController
	ScholarshipController controller.IScholarshipController
	FinanceController     controller.IFinanceController
	AuditController       controller.IAuditController
	UserController        controller.IUserController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS mirror is optional. The audit trail is authoritative in the
	// database; the mirror feeds external compliance tooling when
	// available.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
		} else {
			natsPub = pub
		}
	}

	loginAttempts := memory.NewLoginAttemptRepository(15*time.Minute, cfg.Auth.MaxLoginAttempts)

	// 3. Services
	auditService := service.NewAuditService(uowFactory, sysLogger, natsPub)
	publisherService := service.NewPublisherService(pubSub)

	authService := service.NewAuthService(
		uowFactory,
		loginAttempts,
		auditService,
		sysLogger,
		cfg.Auth.JwtSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)
	clientService := service.NewClientService(uowFactory, auditService)
	donationService := service.NewDonationService(uowFactory, auditService)
	scholarshipService := service.NewScholarshipService(uowFactory, auditService, publisherService)
	financeService := service.NewFinanceService(uowFactory)
	userService := service.NewUserService(uowFactory, auditService, emailService, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		emailService,
		cfg.App.NotifyEmail,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		ClientController:      controller.NewClientController(clientService),
		CenterController:      controller.NewCenterController(clientService),
		DonationController:    controller.NewDonationController(donationService),
		ScholarshipController: controller.NewScholarshipController(scholarshipService),
		FinanceController:     controller.NewFinanceController(financeService),
		AuditController:       controller.NewAuditController(auditService),
		UserController:        controller.NewUserController(userService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
