package contract

import (
	"context"

	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Client, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Client, error)
}

type TreatmentCenterRepository interface {
	Create(ctx context.Context, center *entity.TreatmentCenter) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TreatmentCenter, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TreatmentCenter, error)
}
