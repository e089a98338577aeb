// Package library implements the reader side of purchased books: access-code
// login, the reader's shelf and reading positions, plus the back-office
// tools for granting and revoking library access.
package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
)

type accessRepo interface {
	GrantAccess(ctx context.Context, a *domain.LibraryAccess) (*domain.LibraryAccess, error)
	ListAccessByEmail(ctx context.Context, email string) ([]domain.LibraryAccess, error)
	ListActiveAccessByCode(ctx context.Context, email, code string) ([]domain.LibraryAccess, error)
	HasActiveAccess(ctx context.Context, email, bookID string) (bool, error)
	RevokeAccess(ctx context.Context, id uuid.UUID) error
}

type readerRepo interface {
	Ensure(ctx context.Context, email string) (*domain.Reader, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reader, error)
	GetPosition(ctx context.Context, readerID uuid.UUID, bookID string) (*domain.ReadingPosition, error)
	SavePosition(ctx context.Context, p domain.ReadingPosition) error
	ActiveSince(ctx context.Context, since time.Time) ([]domain.ReadingPosition, error)
}

type sessionService interface {
	Start(ctx context.Context, role domain.Role, subjectID uuid.UUID) (string, *domain.Session, error)
}

type lockoutStore interface {
	Get(ctx context.Context, key string) (domain.LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (domain.LockoutState, error)
	Clear(ctx context.Context, key string) error
}

type notifier interface {
	Deliver(ctx context.Context, msg email.Message) error
}

type auditor interface {
	Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements reader and library access operations.
type Service struct {
	log       *slog.Logger
	access    accessRepo
	readers   readerRepo
	sessions  sessionService
	lockout   lockoutStore
	notifier  notifier
	templates *email.Templates
	audit     auditor
	tx        txManager
	cfg       config.AuthConfig
	titles    map[string]string
	order     []string
	now       func() time.Time
}

// NewService creates a new library service. catalog names the books that
// can be granted and supplies their titles.
func NewService(
	logger *slog.Logger,
	access accessRepo,
	readers readerRepo,
	sessions sessionService,
	lockout lockoutStore,
	notifier notifier,
	templates *email.Templates,
	audit auditor,
	tx txManager,
	cfg config.AuthConfig,
	catalog []config.CatalogItem,
) *Service {
	titles := make(map[string]string, len(catalog))
	order := make([]string, 0, len(catalog))
	for _, item := range catalog {
		titles[item.ID] = item.Title
		order = append(order, item.ID)
	}
	return &Service{
		log:       logger.With("service", "library"),
		access:    access,
		readers:   readers,
		sessions:  sessions,
		lockout:   lockout,
		notifier:  notifier,
		templates: templates,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		titles:    titles,
		order:     order,
		now:       time.Now,
	}
}

func (s *Service) title(bookID string) string {
	if t, ok := s.titles[bookID]; ok {
		return t
	}
	return bookID
}
