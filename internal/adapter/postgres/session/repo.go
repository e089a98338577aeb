// Package session implements login session persistence using PostgreSQL.
// Rows back the signed session tokens so they can be revoked server-side.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO sessions (id, role, subject_id, issued_at, expires_at)
VALUES ($1, $2, $3, $4, $5)`

const getByIDSQL = `
SELECT id, role, subject_id, issued_at, expires_at, revoked_at
FROM sessions WHERE id = $1`

const revokeSQL = `
UPDATE sessions SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`

const revokeBySubjectSQL = `
UPDATE sessions SET revoked_at = now() WHERE subject_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions WHERE expires_at < $1 OR revoked_at IS NOT NULL`

// Create stores a freshly issued session.
func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL, s.ID, string(s.Role), s.SubjectID, s.IssuedAt, s.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// GetByID returns a session row, revoked or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var (
		s    domain.Session
		role string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id).Scan(
		&s.ID, &role, &s.SubjectID, &s.IssuedAt, &s.ExpiresAt, &s.RevokedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	s.Role = domain.Role(role)
	return &s, nil
}

// Revoke ends a session. Revoking an already revoked or unknown session is
// not an error.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}
	return nil
}

// RevokeBySubject ends every active session of a subject. Used when an
// access code is regenerated or an account is deactivated.
func (r *Repo) RevokeBySubject(ctx context.Context, subjectID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeBySubjectSQL, subjectID)
	if err != nil {
		return 0, postgres.MapError(err, "session", subjectID)
	}
	return tag.RowsAffected(), nil
}

// DeleteExpired removes expired and revoked sessions and returns the count.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, postgres.MapError(err, "session", "expired")
	}
	return tag.RowsAffected(), nil
}
