package partner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
)

// SessionInfo describes the portal session of a caller.
type SessionInfo struct {
	Authenticated bool
	Role          domain.Role
	Partner       *domain.Partner
	TeamMember    *domain.TeamMember
	Permissions   domain.Permissions
}

// LoginResult is returned by a successful access-code login.
type LoginResult struct {
	Token   string
	Session *domain.Session
	SessionInfo
}

// Login authenticates a partner or team member by access code. Repeated
// failures from one client lock it out for the configured window.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := "partner:" + input.ClientKey
	now := s.now()

	state, err := s.lockout.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "lockout lookup failed", slog.String("error", err.Error()))
	} else if state.IsLocked(now) {
		return nil, &domain.LockedOutError{Until: *state.LockedUntil}
	}

	code := auth.NormalizeAccessCode(input.AccessCode)
	role, subjectID, v, err := s.lookupAccessCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			return nil, fmt.Errorf("partner.Login lookup: %w", err)
		}
		failed, lockErr := s.lockout.RecordFailure(ctx, key, now, s.cfg.LockoutAttempts, s.cfg.LockoutWindow)
		if lockErr != nil {
			s.log.WarnContext(ctx, "lockout record failed", slog.String("error", lockErr.Error()))
		} else if failed.IsLocked(now) {
			s.log.WarnContext(ctx, "access code lockout", slog.String("client", input.ClientKey))
		}
		return nil, domain.ErrUnauthorized
	}

	if err := s.lockout.Clear(ctx, key); err != nil {
		s.log.WarnContext(ctx, "lockout clear failed", slog.String("error", err.Error()))
	}

	token, sess, err := s.sessions.Start(ctx, role, subjectID)
	if err != nil {
		return nil, fmt.Errorf("partner.Login: %w", err)
	}

	s.log.InfoContext(ctx, "portal login",
		slog.String("role", role.String()),
		slog.String("partner_id", v.partner.ID.String()),
	)

	return &LoginResult{
		Token:       token,
		Session:     sess,
		SessionInfo: s.sessionInfo(role, v),
	}, nil
}

// lookupAccessCode finds the active partner, then team member, owning code.
func (s *Service) lookupAccessCode(ctx context.Context, code string) (domain.Role, uuid.UUID, *viewer, error) {
	p, err := s.partners.GetByAccessCode(ctx, code)
	switch {
	case err == nil:
		if !p.Active {
			return "", uuid.Nil, nil, domain.ErrUnauthorized
		}
		return domain.RolePartner, p.ID, &viewer{partner: p, perms: domain.PartnerPermissions()}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return "", uuid.Nil, nil, err
	}

	m, err := s.partners.GetTeamMemberByAccessCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", uuid.Nil, nil, domain.ErrUnauthorized
		}
		return "", uuid.Nil, nil, err
	}
	if !m.Active {
		return "", uuid.Nil, nil, domain.ErrUnauthorized
	}
	v, err := s.resolveViewer(ctx, domain.Principal{Role: domain.RoleTeamMember, SubjectID: m.ID})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
			return "", uuid.Nil, nil, domain.ErrUnauthorized
		}
		return "", uuid.Nil, nil, err
	}
	return domain.RoleTeamMember, m.ID, v, nil
}

// Session reports whether token is a live portal session. Expired, revoked
// or otherwise invalid tokens yield Authenticated=false rather than an error.
func (s *Service) Session(ctx context.Context, token string) (*SessionInfo, error) {
	p, err := s.sessions.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrUnauthorized) {
			return &SessionInfo{}, nil
		}
		return nil, fmt.Errorf("partner.Session: %w", err)
	}
	if p.Role != domain.RolePartner && p.Role != domain.RoleTeamMember {
		return &SessionInfo{}, nil
	}

	v, err := s.resolveViewer(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
			return &SessionInfo{}, nil
		}
		return nil, fmt.Errorf("partner.Session: %w", err)
	}

	info := s.sessionInfo(p.Role, v)
	return &info, nil
}

// Logout ends a portal session.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.End(ctx, sessionID); err != nil {
		return fmt.Errorf("partner.Logout: %w", err)
	}
	return nil
}

func (s *Service) sessionInfo(role domain.Role, v *viewer) SessionInfo {
	return SessionInfo{
		Authenticated: true,
		Role:          role,
		Partner:       partnerView(v.partner, v.perms, v.isOwner()),
		TeamMember:    v.member,
		Permissions:   v.perms,
	}
}
