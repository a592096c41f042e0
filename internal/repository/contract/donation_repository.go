package contract

import (
	"context"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	SetReceiptSent(ctx context.Context, id uuid.UUID, sent bool) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Donation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Donation, error)
}
