package service

import (
	"context"
	"strings"
	"time"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"
	"scholarship-fund-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IClientService interface {
	Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetAll(ctx context.Context) ([]*dto.ClientResponse, error)
	Deactivate(ctx context.Context, actorId, clientId uuid.UUID) error
	GetTreatmentCenters(ctx context.Context) ([]*dto.TreatmentCenterResponse, error)
}

type clientService struct {
	uowFactory   unitofwork.RepositoryFactory
	auditService IAuditService
}

func NewClientService(uowFactory unitofwork.RepositoryFactory, auditService IAuditService) IClientService {
	return &clientService{uowFactory: uowFactory, auditService: auditService}
}

func (s *clientService) Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(req.RefCode1) == "" {
		return nil, apperror.Validation("ref_code_1 is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolvePrincipal(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	client := &entity.Client{
		Id:        uuid.New(),
		RefCode1:  strings.TrimSpace(req.RefCode1),
		RefCode2:  trimmedOrNil(req.RefCode2),
		RefCode3:  trimmedOrNil(req.RefCode3),
		Notes:     req.Notes,
		IsActive:  true,
		CreatedBy: actorId,
		CreatedAt: time.Now(),
	}

	if err := uow.ClientRepository().Create(ctx, client); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	s.auditService.Record(ctx, &actorId, entity.AuditActionCreate, "client", &client.Id, map[string]interface{}{
		"ref_code_1": client.RefCode1,
	})

	return toClientResponse(client), nil
}

func (s *clientService) GetAll(ctx context.Context) ([]*dto.ClientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	clients, err := uow.ClientRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, toClientResponse(c))
	}
	return res, nil
}

func (s *clientService) Deactivate(ctx context.Context, actorId, clientId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := requireSuperAdmin(ctx, uow.UserRepository(), actorId); err != nil {
		return err
	}

	client, err := uow.ClientRepository().FindOne(ctx, specification.ByID{ID: clientId})
	if err != nil {
		return apperror.StoreUnavailable(err)
	}
	if client == nil {
		return apperror.NotFound("client not found")
	}

	if err := uow.ClientRepository().Deactivate(ctx, clientId); err != nil {
		return apperror.StoreUnavailable(err)
	}

	s.auditService.Record(ctx, &actorId, entity.AuditActionUpdate, "client", &clientId, map[string]interface{}{
		"is_active": false,
	})
	return nil
}

func (s *clientService) GetTreatmentCenters(ctx context.Context) ([]*dto.TreatmentCenterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	centers, err := uow.TreatmentCenterRepository().FindAll(ctx,
		specification.Active{},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TreatmentCenterResponse, 0, len(centers))
	for _, c := range centers {
		res = append(res, &dto.TreatmentCenterResponse{
			Id:    c.Id,
			Name:  c.Name,
			City:  c.City,
			State: c.State,
		})
	}
	return res, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		Id:        c.Id,
		RefCode1:  c.RefCode1,
		RefCode2:  c.RefCode2,
		RefCode3:  c.RefCode3,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
