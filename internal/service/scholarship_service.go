package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"
	"scholarship-fund-be/internal/repository/unitofwork"
	"scholarship-fund-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxReferenceAttempts bounds the suffix retry loop when two scholarships
// for the same client land on the same award date.
const maxReferenceAttempts = 5

type IScholarshipService interface {
	Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateScholarshipRequest) (*dto.ScholarshipResponse, error)
	GetAll(ctx context.Context) ([]*dto.ScholarshipResponse, error)
	GetPending(ctx context.Context) ([]*dto.ScholarshipResponse, error)
	RecordApproval(ctx context.Context, approverId, scholarshipId uuid.UUID, req *dto.RecordApprovalRequest) (*dto.RecordApprovalResponse, error)
	Disburse(ctx context.Context, actorId, scholarshipId uuid.UUID) (*dto.ScholarshipResponse, error)
	Cancel(ctx context.Context, actorId, scholarshipId uuid.UUID) (*dto.ScholarshipResponse, error)
}

type scholarshipService struct {
	uowFactory       unitofwork.RepositoryFactory
	auditService     IAuditService
	publisherService IPublisherService
}

func NewScholarshipService(
	uowFactory unitofwork.RepositoryFactory,
	auditService IAuditService,
	publisherService IPublisherService,
) IScholarshipService {
	return &scholarshipService{
		uowFactory:       uowFactory,
		auditService:     auditService,
		publisherService: publisherService,
	}
}

func (s *scholarshipService) Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateScholarshipRequest) (*dto.ScholarshipResponse, error) {
	if !entity.ValidCurrencyAmount(req.Amount) {
		return nil, apperror.Validation("amount must be positive with at most two decimal places")
	}
	if !entity.ValidInsuranceSituation(req.Insurance) {
		return nil, apperror.Newf(apperror.KindValidation, "unknown insurance situation %q", req.Insurance)
	}
	if !entity.ValidScholarshipPurpose(req.Purpose) {
		return nil, apperror.Newf(apperror.KindValidation, "unknown scholarship purpose %q", req.Purpose)
	}
	awardDate, err := time.Parse("2006-01-02", req.AwardDate)
	if err != nil {
		return nil, apperror.Validation("award_date must be in YYYY-MM-DD format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolvePrincipal(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	client, err := uow.ClientRepository().FindOne(ctx,
		specification.ByID{ID: req.ClientId},
		specification.Active{},
	)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if client == nil {
		return nil, apperror.ReferenceNotFound("client not found or inactive")
	}

	center, err := uow.TreatmentCenterRepository().FindOne(ctx,
		specification.ByID{ID: req.TreatmentCenterId},
		specification.Active{},
	)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if center == nil {
		return nil, apperror.ReferenceNotFound("treatment center not found or inactive")
	}

	baseRef := entity.ScholarshipReference(client.RefCodes(), awardDate)

	scholarship := &entity.Scholarship{
		Id:                uuid.New(),
		Reference:         baseRef,
		ClientId:          client.Id,
		TreatmentCenterId: center.Id,
		Amount:            req.Amount,
		AwardDate:         awardDate,
		Insurance:         req.Insurance,
		Purpose:           req.Purpose,
		Notes:             req.Notes,
		Status:            entity.ScholarshipStatusPending,
		ApprovalCount:     0,
		CreatedBy:         actorId,
		CreatedAt:         time.Now(),
	}

	// Same client, same award date: the unique index rejects the base
	// reference, so retry with a numeric suffix.
	for attempt := 1; ; attempt++ {
		err = uow.ScholarshipRepository().Create(ctx, scholarship)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.StoreUnavailable(err)
		}
		if attempt >= maxReferenceAttempts {
			return nil, apperror.Conflict("could not allocate a unique scholarship reference")
		}
		scholarship.Reference = fmt.Sprintf("%s-%d", baseRef, attempt+1)
	}

	s.auditService.Record(ctx, &actorId, entity.AuditActionCreate, "scholarship", &scholarship.Id, map[string]interface{}{
		"reference": scholarship.Reference,
		"amount":    scholarship.Amount,
	})

	return toScholarshipResponse(scholarship), nil
}

func (s *scholarshipService) GetAll(ctx context.Context) ([]*dto.ScholarshipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scholarships, err := uow.ScholarshipRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toScholarshipResponses(scholarships), nil
}

func (s *scholarshipService) GetPending(ctx context.Context) ([]*dto.ScholarshipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scholarships, err := uow.ScholarshipRepository().FindAll(ctx,
		specification.ByStatus{Status: entity.ScholarshipStatusPending},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toScholarshipResponses(scholarships), nil
}

// RecordApproval casts one super-admin vote. The approval row insert and
// the counter increment commit atomically: a failure of either rolls back
// both, so the count always equals the number of approval rows. The status
// flip is decided from the authoritative post-increment count, never from
// a value read before it.
func (s *scholarshipService) RecordApproval(ctx context.Context, approverId, scholarshipId uuid.UUID, req *dto.RecordApprovalRequest) (*dto.RecordApprovalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	approver, err := requireSuperAdmin(ctx, uow.UserRepository(), approverId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	defer uow.Rollback()

	scholarship, err := uow.ScholarshipRepository().FindOne(ctx, specification.ByID{ID: scholarshipId})
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if scholarship == nil {
		return nil, apperror.NotFound("scholarship not found")
	}
	if scholarship.Final() {
		return nil, apperror.AlreadyFinal("scholarship already has the required approvals")
	}

	var comment *string
	if req != nil {
		comment = req.Comment
	}
	approval := &entity.ScholarshipApproval{
		Id:            uuid.New(),
		ScholarshipId: scholarshipId,
		ApproverId:    approverId,
		Comment:       comment,
		CreatedAt:     time.Now(),
	}
	if err := uow.ScholarshipApprovalRepository().Create(ctx, approval); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.AlreadyApproved("you have already approved this scholarship")
		}
		return nil, apperror.StoreUnavailable(err)
	}

	count, applied, err := uow.ScholarshipRepository().IncrementApprovalCount(ctx, scholarshipId)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if !applied {
		// Lost the race with the final vote; the rollback removes the
		// approval row inserted above.
		return nil, apperror.AlreadyFinal("scholarship already has the required approvals")
	}

	status := entity.ScholarshipStatusPending
	if count >= entity.RequiredApprovals {
		if err := uow.ScholarshipRepository().MarkApproved(ctx, scholarshipId); err != nil {
			return nil, apperror.StoreUnavailable(err)
		}
		status = entity.ScholarshipStatusApproved
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	s.auditService.Record(ctx, &approverId, entity.AuditActionApprove, "scholarship", &scholarshipId, map[string]interface{}{
		"approver":       approver.FullName,
		"approval_count": count,
	})

	if status == entity.ScholarshipStatusApproved {
		if err := s.publisherService.Publish(ctx, events.NewScholarshipApprovedEvent(scholarshipId, scholarship.Reference, scholarship.Amount)); err != nil {
			s.auditService.Record(ctx, nil, entity.AuditActionUpdate, "scholarship", &scholarshipId, map[string]interface{}{
				"note": "approval event publish failed",
			})
		}
	}

	return &dto.RecordApprovalResponse{
		ScholarshipId: scholarshipId,
		ApprovalCount: count,
		Status:        status,
	}, nil
}

func (s *scholarshipService) Disburse(ctx context.Context, actorId, scholarshipId uuid.UUID) (*dto.ScholarshipResponse, error) {
	return s.transition(ctx, actorId, scholarshipId,
		[]string{entity.ScholarshipStatusApproved},
		entity.ScholarshipStatusDisbursed,
		entity.AuditActionDisburse,
		"only approved scholarships can be disbursed",
	)
}

func (s *scholarshipService) Cancel(ctx context.Context, actorId, scholarshipId uuid.UUID) (*dto.ScholarshipResponse, error) {
	return s.transition(ctx, actorId, scholarshipId,
		[]string{entity.ScholarshipStatusPending, entity.ScholarshipStatusApproved},
		entity.ScholarshipStatusCancelled,
		entity.AuditActionCancel,
		"only pending or approved scholarships can be cancelled",
	)
}

func (s *scholarshipService) transition(ctx context.Context, actorId, scholarshipId uuid.UUID, from []string, to, auditAction, conflictMsg string) (*dto.ScholarshipResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := requireSuperAdmin(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	applied := false
	for _, status := range from {
		ok, err := uow.ScholarshipRepository().UpdateStatus(ctx, scholarshipId, status, to)
		if err != nil {
			return nil, apperror.StoreUnavailable(err)
		}
		if ok {
			applied = true
			break
		}
	}
	if !applied {
		scholarship, err := uow.ScholarshipRepository().FindOne(ctx, specification.ByID{ID: scholarshipId})
		if err != nil {
			return nil, apperror.StoreUnavailable(err)
		}
		if scholarship == nil {
			return nil, apperror.NotFound("scholarship not found")
		}
		return nil, apperror.Conflict(conflictMsg)
	}

	scholarship, err := uow.ScholarshipRepository().FindOne(ctx, specification.ByID{ID: scholarshipId})
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	s.auditService.Record(ctx, &actorId, auditAction, "scholarship", &scholarshipId, map[string]interface{}{
		"status": to,
	})

	return toScholarshipResponse(scholarship), nil
}

func toScholarshipResponse(s *entity.Scholarship) *dto.ScholarshipResponse {
	if s == nil {
		return nil
	}
	return &dto.ScholarshipResponse{
		Id:            s.Id,
		Reference:     s.Reference,
		ClientId:      s.ClientId,
		CenterId:      s.TreatmentCenterId,
		Amount:        s.Amount,
		AwardDate:     s.AwardDate,
		Insurance:     s.Insurance,
		Purpose:       s.Purpose,
		Notes:         s.Notes,
		Status:        s.Status,
		ApprovalCount: s.ApprovalCount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toScholarshipResponses(scholarships []*entity.Scholarship) []*dto.ScholarshipResponse {
	res := make([]*dto.ScholarshipResponse, 0, len(scholarships))
	for _, s := range scholarships {
		res = append(res, toScholarshipResponse(s))
	}
	return res
}
