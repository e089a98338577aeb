package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

// LoginResult is returned by a successful admin login.
type LoginResult struct {
	Token   string
	Session *domain.Session
	Admin   *domain.AdminUser
}

// Login authenticates an admin by email and password.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := "admin:" + input.ClientKey
	now := s.now()

	state, err := s.lockout.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "lockout lookup failed", slog.String("error", err.Error()))
	} else if state.IsLocked(now) {
		return nil, &domain.LockedOutError{Until: *state.LockedUntil}
	}

	a, err := s.admins.GetByEmail(ctx, domain.NormalizeEmail(input.Email))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("admin.Login: %w", err)
	}
	if a == nil || !auth.CheckPassword(a.PasswordHash, input.Password) {
		if _, err := s.lockout.RecordFailure(ctx, key, now, s.cfg.LockoutAttempts, s.cfg.LockoutWindow); err != nil {
			s.log.WarnContext(ctx, "lockout record failed", slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	if err := s.lockout.Clear(ctx, key); err != nil {
		s.log.WarnContext(ctx, "lockout clear failed", slog.String("error", err.Error()))
	}

	token, sess, err := s.sessions.Start(ctx, domain.RoleAdmin, a.ID)
	if err != nil {
		return nil, fmt.Errorf("admin.Login: %w", err)
	}

	s.log.InfoContext(ctx, "admin login", slog.String("admin_id", a.ID.String()), slog.String("role", a.Role.String()))
	return &LoginResult{Token: token, Session: sess, Admin: a}, nil
}

// Logout ends an admin session.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.End(ctx, sessionID); err != nil {
		return fmt.Errorf("admin.Logout: %w", err)
	}
	return nil
}

// Me returns the admin in ctx.
func (s *Service) Me(ctx context.Context) (*domain.AdminUser, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok || p.Role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	a, err := s.admins.GetByID(ctx, p.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("admin.Me: %w", err)
	}
	return a, nil
}

// Authorize checks that the admin in ctx may act within scope.
func (s *Service) Authorize(ctx context.Context, scope domain.AdminScope) error {
	a, err := s.Me(ctx)
	if err != nil {
		return err
	}
	if !a.Can(scope) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) requireSuper(ctx context.Context) (*domain.AdminUser, error) {
	a, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	if a.Role != domain.AdminRoleSuper {
		return nil, domain.ErrForbidden
	}
	return a, nil
}
