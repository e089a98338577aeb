// Package admin implements back-office accounts: password login, scope
// checks and super-admin management of sub-admins.
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
)

type adminRepo interface {
	Create(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	List(ctx context.Context) ([]domain.AdminUser, error)
	Update(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountSuperAdmins(ctx context.Context) (int, error)
}

type sessionService interface {
	Start(ctx context.Context, role domain.Role, subjectID uuid.UUID) (string, *domain.Session, error)
	End(ctx context.Context, sessionID uuid.UUID) error
	EndAllFor(ctx context.Context, subjectID uuid.UUID) (int64, error)
}

type lockoutStore interface {
	Get(ctx context.Context, key string) (domain.LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (domain.LockoutState, error)
	Clear(ctx context.Context, key string) error
}

type auditor interface {
	Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin account operations.
type Service struct {
	log      *slog.Logger
	admins   adminRepo
	sessions sessionService
	lockout  lockoutStore
	audit    auditor
	tx       txManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new admin service.
func NewService(
	logger *slog.Logger,
	admins adminRepo,
	sessions sessionService,
	lockout lockoutStore,
	audit auditor,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		admins:   admins,
		sessions: sessions,
		lockout:  lockout,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}

const auditEntity = "admin_user"
