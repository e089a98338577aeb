package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
)

// ListAdmins returns every admin account. Super admins only.
func (s *Service) ListAdmins(ctx context.Context) ([]domain.AdminUser, error) {
	if _, err := s.requireSuper(ctx); err != nil {
		return nil, err
	}
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListAdmins: %w", err)
	}
	return admins, nil
}

// CreateAdmin creates an admin account. Super admins only.
func (s *Service) CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.AdminUser, error) {
	if _, err := s.requireSuper(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.newAdmin(input)
	if err != nil {
		return nil, fmt.Errorf("admin.CreateAdmin: %w", err)
	}

	var created *domain.AdminUser
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.admins.Create(ctx, a)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, created.ID, domain.AuditCreate, map[string]any{
			"email":  created.Email,
			"role":   created.Role,
			"scopes": created.Scopes,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("admin.CreateAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin created", slog.String("admin_id", created.ID.String()), slog.String("role", created.Role.String()))
	return created, nil
}

// Bootstrap creates a super admin without a signed-in caller. It is used by
// the operator CLI to seed the first account.
func (s *Service) Bootstrap(ctx context.Context, addr, name, password string) (*domain.AdminUser, error) {
	input := CreateAdminInput{Email: addr, Name: name, Password: password, Role: domain.AdminRoleSuper}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	a, err := s.newAdmin(input)
	if err != nil {
		return nil, fmt.Errorf("admin.Bootstrap: %w", err)
	}
	created, err := s.admins.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("admin.Bootstrap: %w", err)
	}
	s.log.InfoContext(ctx, "super admin bootstrapped", slog.String("admin_id", created.ID.String()))
	return created, nil
}

func (s *Service) newAdmin(input CreateAdminInput) (*domain.AdminUser, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	a := &domain.AdminUser{
		ID:           uuid.New(),
		Email:        domain.NormalizeEmail(input.Email),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         input.Role,
		Scopes:       dedupeScopes(input.Scopes),
	}
	if a.Role == domain.AdminRoleSuper {
		a.Scopes = nil
	}
	return a, nil
}

// UpdateAdmin changes an admin's name, role or scopes. Super admins only.
// The last super admin cannot be demoted.
func (s *Service) UpdateAdmin(ctx context.Context, id uuid.UUID, input UpdateAdminInput) (*domain.AdminUser, error) {
	if _, err := s.requireSuper(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.AdminUser
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.admins.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Name != nil {
			a.Name = strings.TrimSpace(*input.Name)
			changes["name"] = a.Name
		}
		if input.Role != nil && *input.Role != a.Role {
			if a.Role == domain.AdminRoleSuper {
				if err := s.keepOneSuper(ctx); err != nil {
					return err
				}
			}
			a.Role = *input.Role
			changes["role"] = a.Role
		}
		if input.Scopes != nil {
			a.Scopes = dedupeScopes(*input.Scopes)
			changes["scopes"] = a.Scopes
		}
		if a.Role == domain.AdminRoleSuper {
			a.Scopes = nil
		}

		updated, err = s.admins.Update(ctx, a)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateAdmin: %w", err)
	}
	return updated, nil
}

// DeleteAdmin removes an admin account and ends its sessions. Super admins
// only; nobody can delete themselves or the last super admin.
func (s *Service) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	me, err := s.requireSuper(ctx)
	if err != nil {
		return err
	}
	if me.ID == id {
		return domain.NewValidationError("id", "cannot delete your own account")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.admins.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if a.Role == domain.AdminRoleSuper {
			if err := s.keepOneSuper(ctx); err != nil {
				return err
			}
		}
		if err := s.admins.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, id, domain.AuditDelete, map[string]any{"email": a.Email})
	})
	if err != nil {
		return fmt.Errorf("admin.DeleteAdmin: %w", err)
	}

	if _, err := s.sessions.EndAllFor(ctx, id); err != nil {
		s.log.WarnContext(ctx, "end admin sessions failed", slog.String("error", err.Error()))
	}
	s.log.InfoContext(ctx, "admin deleted", slog.String("admin_id", id.String()))
	return nil
}

// keepOneSuper refuses to remove a super admin when it is the only one.
func (s *Service) keepOneSuper(ctx context.Context) error {
	n, err := s.admins.CountSuperAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return fmt.Errorf("last super admin: %w", domain.ErrConflict)
	}
	return nil
}

// ChangePassword replaces the signed-in admin's password after checking the
// current one. Other sessions of the admin are ended.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	me, err := s.Me(ctx)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(me.PasswordHash, current) {
		return domain.NewValidationError("current_password", "does not match")
	}
	if len(next) < auth.MinPasswordLen {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", auth.MinPasswordLen))
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("admin.ChangePassword: %w", err)
	}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.admins.UpdatePassword(ctx, me.ID, hash); err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, me.ID, domain.AuditUpdate, map[string]any{"password": "changed"})
	})
	if err != nil {
		return fmt.Errorf("admin.ChangePassword: %w", err)
	}
	if _, err := s.sessions.EndAllFor(ctx, me.ID); err != nil {
		s.log.WarnContext(ctx, "end admin sessions failed", slog.String("error", err.Error()))
	}
	return nil
}
