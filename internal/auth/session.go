package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// SessionManager signs and parses session tokens.
// The token carries the session row id as jti so it can be revoked server-side.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured session lifetime.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Issue creates a new session for the subject and returns the signed token.
func (m *SessionManager) Issue(role domain.Role, subjectID uuid.UUID) (string, domain.Session, error) {
	if !role.IsValid() {
		return "", domain.Session{}, fmt.Errorf("issue session: invalid role %q", role)
	}

	now := m.now().UTC().Truncate(time.Second)
	sess := domain.Session{
		ID:        uuid.New(),
		Role:      role,
		SubjectID: subjectID,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID.String(),
			Subject:   subjectID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		Role: role.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, sess, nil
}

// Parse validates the token signature and expiry.
// Expired tokens return domain.ErrSessionExpired; anything else malformed
// returns domain.ErrUnauthorized.
func (m *SessionManager) Parse(token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Session{}, domain.ErrSessionExpired
		}
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return domain.Session{}, domain.ErrUnauthorized
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return domain.Session{}, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, claims.Role)
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: invalid jti", domain.ErrUnauthorized)
	}
	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: invalid subject", domain.ErrUnauthorized)
	}

	sess := domain.Session{
		ID:        id,
		Role:      role,
		SubjectID: subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		sess.IssuedAt = claims.IssuedAt.Time
	}
	return sess, nil
}
