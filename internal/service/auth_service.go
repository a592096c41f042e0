package service

import (
	"context"
	"strings"
	"time"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/pkg/logger"
	"scholarship-fund-be/internal/repository/memory"
	"scholarship-fund-be/internal/repository/specification"
	"scholarship-fund-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userId uuid.UUID) error
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	loginAttempts *memory.LoginAttemptRepository
	auditService  IAuditService
	sysLogger     logger.ILogger
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	loginAttempts *memory.LoginAttemptRepository,
	auditService IAuditService,
	sysLogger logger.ILogger,
	jwtSecret string,
	tokenTTL time.Duration,
) IAuthService {
	return &authService{
		uowFactory:    uowFactory,
		loginAttempts: loginAttempts,
		auditService:  auditService,
		sysLogger:     sysLogger,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if s.loginAttempts.Blocked(email) {
		return nil, apperror.Forbidden("too many failed attempts, try again later")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if user == nil || !user.IsActive || user.PasswordHash == nil {
		s.loginAttempts.RecordFailure(email)
		return nil, apperror.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.loginAttempts.RecordFailure(email)
		return nil, apperror.Unauthorized("invalid email or password")
	}

	s.loginAttempts.Clear(email)

	token, err := s.signToken(user.Id)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id); err != nil {
		s.sysLogger.Warn("auth", "failed to record last login", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
	}

	s.auditService.Record(ctx, &user.Id, entity.AuditActionLogin, "user", &user.Id, nil)

	return &dto.LoginResponse{
		AccessToken: token,
		User:        toProfileResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID) error {
	s.auditService.Record(ctx, &userId, entity.AuditActionLogout, "user", &userId, nil)
	return nil
}

func (s *authService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := resolvePrincipal(ctx, uow.UserRepository(), userId)
	if err != nil {
		return nil, err
	}

	profile := toProfileResponse(user)
	return &profile, nil
}

func (s *authService) signToken(userId uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func toProfileResponse(u *entity.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		LastLogin: u.LastLogin,
	}
}
