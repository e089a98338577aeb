package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a signed, revocable login for any principal kind.
type Session struct {
	ID        uuid.UUID
	Role      Role
	SubjectID uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsRevoked reports whether the session was explicitly ended.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	SessionID uuid.UUID
	Role      Role
	SubjectID uuid.UUID
}

// LockoutState is the failed-login tally for one credential key.
type LockoutState struct {
	FailedCount int
	LockedUntil *time.Time
}

// IsLocked reports whether logins for the key are refused at now.
func (s LockoutState) IsLocked(now time.Time) bool {
	return s.LockedUntil != nil && now.Before(*s.LockedUntil)
}
