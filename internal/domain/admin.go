package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         AdminRole
	Scopes       []AdminScope
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Can reports whether the admin may act within scope. Super admins may act
// everywhere.
func (a *AdminUser) Can(scope AdminScope) bool {
	if a.Role == AdminRoleSuper {
		return true
	}
	return slices.Contains(a.Scopes, scope)
}

// AuditRecord logs an admin mutation.
type AuditRecord struct {
	ID         uuid.UUID
	AdminID    uuid.UUID
	EntityType string
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
