package service

import (
	"context"

	"scholarship-fund-be/internal/apperror"
	"scholarship-fund-be/internal/entity"
	"scholarship-fund-be/internal/repository/contract"
	"scholarship-fund-be/internal/repository/specification"

	"github.com/google/uuid"
)

// resolvePrincipal loads the acting user from the store. Authorization is
// always decided here against authoritative data, never from client-side
// visibility or token claims.
func resolvePrincipal(ctx context.Context, users contract.UserRepository, actorId uuid.UUID) (*entity.User, error) {
	user, err := users.FindOne(ctx, specification.ByID{ID: actorId})
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	if user == nil || !user.IsActive {
		return nil, apperror.Unauthorized("unknown or inactive principal")
	}
	return user, nil
}

func requireSuperAdmin(ctx context.Context, users contract.UserRepository, actorId uuid.UUID) (*entity.User, error) {
	user, err := resolvePrincipal(ctx, users, actorId)
	if err != nil {
		return nil, err
	}
	if !user.CanApprove() {
		return nil, apperror.Forbidden("super admin role required")
	}
	return user, nil
}
