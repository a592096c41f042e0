package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleAdmin      = "admin"
	UserRoleSuperAdmin = "super_admin"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash *string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// CanApprove reports whether this user may vote on scholarship approvals.
// Only active super admins qualify; there is no seniority override.
func (u *User) CanApprove() bool {
	return u.IsActive && u.Role == UserRoleSuperAdmin
}

func ValidUserRole(role string) bool {
	return role == UserRoleAdmin || role == UserRoleSuperAdmin
}
