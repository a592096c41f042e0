package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/pkg/logger"
	"scholarship-fund-be/internal/pkg/mailer"
	"scholarship-fund-be/internal/repository/specification"
	"scholarship-fund-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IUserService interface {
	Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetAll(ctx context.Context, actorId uuid.UUID) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory   unitofwork.RepositoryFactory
	auditService IAuditService
	emailService mailer.IEmailService
	sysLogger    logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	auditService IAuditService,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
) IUserService {
	return &userService{
		uowFactory:   uowFactory,
		auditService: auditService,
		emailService: emailService,
		sysLogger:    sysLogger,
	}
}

func (s *userService) Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidUserRole(req.Role) {
		return nil, apperror.Newf(apperror.KindValidation, "unknown role %q", req.Role)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := requireSuperAdmin(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         req.Role,
		IsActive:     true,
		CreatedBy:    &actorId,
		CreatedAt:    time.Now(),
	}

	// The unique index on users.email is the arbiter, so two racing
	// creates cannot both land; a check-then-insert could.
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a user with this email already exists")
		}
		return nil, apperror.StoreUnavailable(err)
	}

	s.auditService.Record(ctx, &actorId, entity.AuditActionCreate, "user", &user.Id, map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})

	// The invite email is best effort. The account exists either way; the
	// admin can reset the password out of band if delivery fails.
	if err := s.emailService.SendInvite(user.Email, user.FullName, tempPassword); err != nil {
		s.sysLogger.Warn("user", "failed to send invite email", map[string]interface{}{
			"email": user.Email,
			"error": err.Error(),
		})
	}

	return toUserResponse(user), nil
}

func (s *userService) GetAll(ctx context.Context, actorId uuid.UUID) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := requireSuperAdmin(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return res, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
