package service

import (
	"context"
	"time"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"
	"scholarship-fund-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDonationService interface {
	Record(ctx context.Context, actorId uuid.UUID, req *dto.RecordDonationRequest) (*dto.DonationResponse, error)
	GetAll(ctx context.Context) ([]*dto.DonationResponse, error)
	SetReceiptSent(ctx context.Context, actorId, donationId uuid.UUID, req *dto.SetReceiptSentRequest) (*dto.DonationResponse, error)
}

type donationService struct {
	uowFactory   unitofwork.RepositoryFactory
	auditService IAuditService
}

func NewDonationService(uowFactory unitofwork.RepositoryFactory, auditService IAuditService) IDonationService {
	return &donationService{uowFactory: uowFactory, auditService: auditService}
}

func (s *donationService) Record(ctx context.Context, actorId uuid.UUID, req *dto.RecordDonationRequest) (*dto.DonationResponse, error) {
	if !entity.ValidCurrencyAmount(req.Amount) {
		return nil, apperror.Validation("amount must be positive with at most two decimal places")
	}
	if !entity.ValidDonationMethod(req.Method) {
		return nil, apperror.Newf(apperror.KindValidation, "unknown donation method %q", req.Method)
	}
	if req.Method == entity.DonationMethodCheck && (req.CheckNumber == nil || *req.CheckNumber == "") {
		return nil, apperror.Validation("check donations require a check number")
	}
	donationDate, err := time.Parse("2006-01-02", req.DonationDate)
	if err != nil {
		return nil, apperror.Validation("donation_date must be in YYYY-MM-DD format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolvePrincipal(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	donation := &entity.Donation{
		Id:           uuid.New(),
		DonorName:    req.DonorName,
		Amount:       req.Amount,
		DonationDate: donationDate,
		Method:       req.Method,
		CheckNumber:  req.CheckNumber,
		DonorEmail:   req.DonorEmail,
		DonorPhone:   req.DonorPhone,
		Notes:        req.Notes,
		ReceiptSent:  false,
		CreatedBy:    actorId,
		CreatedAt:    time.Now(),
	}

	if err := uow.DonationRepository().Create(ctx, donation); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	s.auditService.Record(ctx, &actorId, entity.AuditActionCreate, "donation", &donation.Id, map[string]interface{}{
		"donor":  donation.DonorName,
		"amount": donation.Amount,
	})

	return toDonationResponse(donation), nil
}

func (s *donationService) GetAll(ctx context.Context) ([]*dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	donations, err := uow.DonationRepository().FindAll(ctx,
		specification.OrderBy{Field: "donation_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DonationResponse, 0, len(donations))
	for _, d := range donations {
		res = append(res, toDonationResponse(d))
	}
	return res, nil
}

func (s *donationService) SetReceiptSent(ctx context.Context, actorId, donationId uuid.UUID, req *dto.SetReceiptSentRequest) (*dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolvePrincipal(ctx, uow.UserRepository(), actorId); err != nil {
		return nil, err
	}

	donation, err := uow.DonationRepository().FindOne(ctx, specification.ByID{ID: donationId})
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if donation == nil {
		return nil, apperror.NotFound("donation not found")
	}

	if err := uow.DonationRepository().SetReceiptSent(ctx, donationId, req.ReceiptSent); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	donation.ReceiptSent = req.ReceiptSent

	s.auditService.Record(ctx, &actorId, entity.AuditActionUpdate, "donation", &donationId, map[string]interface{}{
		"receipt_sent": req.ReceiptSent,
	})

	return toDonationResponse(donation), nil
}

func toDonationResponse(d *entity.Donation) *dto.DonationResponse {
	return &dto.DonationResponse{
		Id:           d.Id,
		DonorName:    d.DonorName,
		Amount:       d.Amount,
		DonationDate: d.DonationDate,
		Method:       d.Method,
		CheckNumber:  d.CheckNumber,
		ReceiptSent:  d.ReceiptSent,
		CreatedAt:    d.CreatedAt,
	}
}
