package service

import (
	"context"
	"time"

	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/pkg/logger"
	"scholarship-fund-be/internal/repository/specification"
	"scholarship-fund-be/internal/repository/unitofwork"
	"scholarship-fund-be/pkg/events"
	pktNats "scholarship-fund-be/pkg/nats"

	"github.com/google/uuid"
)

type IAuditService interface {
	// Record appends an audit event. It never fails the caller: storage
	// problems are logged and swallowed so audit-log unavailability cannot
	// block a business operation.
	Record(ctx context.Context, actorId *uuid.UUID, action, resourceType string, resourceId *uuid.UUID, detail map[string]interface{})

	GetRecent(ctx context.Context, limit int) ([]*dto.AuditEventResponse, error)
}

type auditService struct {
	uowFactory     unitofwork.RepositoryFactory
	sysLogger      logger.ILogger
	eventPublisher *pktNats.Publisher // optional, nil when NATS is not configured
}

func NewAuditService(
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IAuditService {
	return &auditService{
		uowFactory:     uowFactory,
		sysLogger:      sysLogger,
		eventPublisher: eventPublisher,
	}
}

func (s *auditService) Record(ctx context.Context, actorId *uuid.UUID, action, resourceType string, resourceId *uuid.UUID, detail map[string]interface{}) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event := &entity.AuditEvent{
		Id:           uuid.New(),
		ActorId:      actorId,
		Action:       action,
		ResourceType: resourceType,
		ResourceId:   resourceId,
		Detail:       detail,
		CreatedAt:    time.Now(),
	}

	if err := uow.AuditEventRepository().Create(ctx, event); err != nil {
		s.sysLogger.Error("audit", "failed to append audit event", map[string]interface{}{
			"action":        action,
			"resource_type": resourceType,
			"error":         err.Error(),
		})
		return
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewAuditRecordedEvent(action, resourceType, resourceId)); err != nil {
			s.sysLogger.Warn("audit", "failed to mirror audit event to NATS", map[string]interface{}{
				"action": action,
				"error":  err.Error(),
			})
		}
	}
}

func (s *auditService) GetRecent(ctx context.Context, limit int) ([]*dto.AuditEventResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.AuditEventRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AuditEventResponse, 0, len(records))
	for _, e := range records {
		res = append(res, &dto.AuditEventResponse{
			Id:           e.Id,
			ActorId:      e.ActorId,
			Action:       e.Action,
			ResourceType: e.ResourceType,
			ResourceId:   e.ResourceId,
			Detail:       e.Detail,
			CreatedAt:    e.CreatedAt,
		})
	}
	return res, nil
}
