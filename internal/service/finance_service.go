package service

import (
	"context"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/dto"
	"scholarship-fund-be/internal/repository/unitofwork"
)

type IFinanceService interface {
	GetSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error)
}

type financeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFinanceService(uowFactory unitofwork.RepositoryFactory) IFinanceService {
	return &financeService{uowFactory: uowFactory}
}

// GetSummary derives the fund projection from one statement-level snapshot.
// A scholarship moving between statuses while the summary runs is counted
// in exactly one bucket, never zero or two.
func (s *financeService) GetSummary(ctx context.Context) (*dto.FinancialSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totals, err := uow.FinanceRepository().Totals(ctx)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	return &dto.FinancialSummaryResponse{
		TotalDonations:     totals.Donated,
		TotalDisbursed:     totals.Disbursed,
		PendingCommitments: totals.Committed,
		AvailableBalance:   totals.Available(),
	}, nil
}
