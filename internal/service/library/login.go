package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
)

// LoginResult is returned by a successful reader login.
type LoginResult struct {
	Token   string
	Session *domain.Session
	Reader  *domain.Reader
	Books   []Book
}

// Login authenticates a reader by email and library access code. Like the
// partner portal, repeated failures lock the client out.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := "reader:" + input.ClientKey
	now := s.now()

	state, err := s.lockout.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "lockout lookup failed", slog.String("error", err.Error()))
	} else if state.IsLocked(now) {
		return nil, &domain.LockedOutError{Until: *state.LockedUntil}
	}

	addr := domain.NormalizeEmail(input.Email)
	grants, err := s.access.ListActiveAccessByCode(ctx, addr, auth.NormalizeAccessCode(input.AccessCode))
	if err != nil {
		return nil, fmt.Errorf("library.Login lookup: %w", err)
	}
	if len(grants) == 0 {
		if _, err := s.lockout.RecordFailure(ctx, key, now, s.cfg.LockoutAttempts, s.cfg.LockoutWindow); err != nil {
			s.log.WarnContext(ctx, "lockout record failed", slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	if err := s.lockout.Clear(ctx, key); err != nil {
		s.log.WarnContext(ctx, "lockout clear failed", slog.String("error", err.Error()))
	}

	reader, err := s.readers.Ensure(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("library.Login reader: %w", err)
	}

	token, sess, err := s.sessions.Start(ctx, domain.RoleReader, reader.ID)
	if err != nil {
		return nil, fmt.Errorf("library.Login: %w", err)
	}

	s.log.InfoContext(ctx, "reader login", slog.String("reader_id", reader.ID.String()))

	books, err := s.shelf(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("library.Login: %w", err)
	}
	return &LoginResult{Token: token, Session: sess, Reader: reader, Books: books}, nil
}
