package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// sessionRepo persists issued sessions so they can be revoked.
type sessionRepo interface {
	Create(ctx context.Context, s domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeBySubject(ctx context.Context, subjectID uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// tokenManager signs and verifies session tokens.
type tokenManager interface {
	Issue(role domain.Role, subjectID uuid.UUID) (string, domain.Session, error)
	Parse(token string) (domain.Session, error)
}

// Service issues, authenticates and ends sessions for every principal kind.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	tokens   tokenManager
	maxAge   time.Duration
	now      func() time.Time
}

// NewService creates a new session service. maxAge bounds a session's
// lifetime measured from issuance.
func NewService(logger *slog.Logger, sessions sessionRepo, tokens tokenManager, maxAge time.Duration) *Service {
	return &Service{
		log:      logger.With("service", "session"),
		sessions: sessions,
		tokens:   tokens,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Start issues a signed token for the subject and records the session row.
func (s *Service) Start(ctx context.Context, role domain.Role, subjectID uuid.UUID) (string, *domain.Session, error) {
	token, sess, err := s.tokens.Issue(role, subjectID)
	if err != nil {
		return "", nil, fmt.Errorf("session.Start issue: %w", err)
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", nil, fmt.Errorf("session.Start store: %w", err)
	}

	s.log.InfoContext(ctx, "session started", slog.String("role", role.String()), slog.String("subject_id", subjectID.String()))
	return token, &sess, nil
}

// Authenticate resolves a token into the principal it was issued to.
// Tokens past the session lifetime return domain.ErrSessionExpired; unknown
// or revoked sessions return domain.ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Principal{}, err
	}

	row, err := s.sessions.GetByID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return domain.Principal{}, fmt.Errorf("session.Authenticate load: %w", err)
	}

	now := s.now()
	switch {
	case row.IsRevoked():
		return domain.Principal{}, domain.ErrUnauthorized
	case row.IsExpired(now), now.Sub(row.IssuedAt) > s.maxAge:
		return domain.Principal{}, domain.ErrSessionExpired
	case row.Role != claims.Role || row.SubjectID != claims.SubjectID:
		return domain.Principal{}, domain.ErrUnauthorized
	}

	return domain.Principal{SessionID: row.ID, Role: row.Role, SubjectID: row.SubjectID}, nil
}

// End revokes a session. Ending an unknown session is not an error.
func (s *Service) End(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("session.End: %w", err)
	}
	return nil
}

// EndAllFor revokes every live session of a subject, e.g. after its access
// code changed.
func (s *Service) EndAllFor(ctx context.Context, subjectID uuid.UUID) (int64, error) {
	n, err := s.sessions.RevokeBySubject(ctx, subjectID)
	if err != nil {
		return 0, fmt.Errorf("session.EndAllFor: %w", err)
	}
	return n, nil
}

// Cleanup deletes sessions that are expired or revoked.
func (s *Service) Cleanup(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("session.Cleanup: %w", err)
	}
	s.log.InfoContext(ctx, "sessions cleaned up", slog.Int64("deleted", n))
	return n, nil
}
