package partner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

// partnerRepo covers partners, their team members, sub-links and clicks.
type partnerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Partner, error)
	GetByAccessCode(ctx context.Context, code string) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
	AccessCodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, p *domain.Partner) (*domain.Partner, error)
	Update(ctx context.Context, p *domain.Partner) (*domain.Partner, error)
	UpdateAccessCode(ctx context.Context, id uuid.UUID, code string) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementClicks(ctx context.Context, id uuid.UUID) error
	RecordClick(ctx context.Context, c domain.Click) error

	CreateSubLink(ctx context.Context, l *domain.SubLink) (*domain.SubLink, error)
	ListSubLinks(ctx context.Context, partnerID uuid.UUID) ([]domain.SubLink, error)
	GetSubLinkByCode(ctx context.Context, code string) (*domain.SubLink, error)
	DeleteSubLink(ctx context.Context, partnerID, id uuid.UUID) error
	IncrementSubLinkClicks(ctx context.Context, id uuid.UUID) error

	CreateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	GetTeamMember(ctx context.Context, partnerID, id uuid.UUID) (*domain.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, id uuid.UUID) (*domain.TeamMember, error)
	GetTeamMemberByAccessCode(ctx context.Context, code string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context, partnerID uuid.UUID) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
}

// orderStats provides sales totals attributed to a partner.
type orderStats interface {
	PartnerFinancials(ctx context.Context, partnerID uuid.UUID) (int64, domain.PartnerFinancials, error)
}

// sessionService issues and checks portal sessions.
type sessionService interface {
	Start(ctx context.Context, role domain.Role, subjectID uuid.UUID) (string, *domain.Session, error)
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
	End(ctx context.Context, sessionID uuid.UUID) error
	EndAllFor(ctx context.Context, subjectID uuid.UUID) (int64, error)
}

// lockoutStore counts failed access-code attempts per client.
type lockoutStore interface {
	Get(ctx context.Context, key string) (domain.LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (domain.LockoutState, error)
	Clear(ctx context.Context, key string) error
}

type notifier interface {
	Deliver(ctx context.Context, msg email.Message) error
	Notify(ctx context.Context, msg email.Message)
}

type auditor interface {
	Record(ctx context.Context, entityType string, entityID uuid.UUID, action domain.AuditAction, changes map[string]any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the partner portal and partner administration.
type Service struct {
	log       *slog.Logger
	partners  partnerRepo
	orders    orderStats
	sessions  sessionService
	lockout   lockoutStore
	notifier  notifier
	templates *email.Templates
	audit     auditor
	tx        txManager
	cfg       config.AuthConfig
	currency  string
	now       func() time.Time
}

// NewService creates a new partner service.
func NewService(
	logger *slog.Logger,
	partners partnerRepo,
	orders orderStats,
	sessions sessionService,
	lockout lockoutStore,
	notifier notifier,
	templates *email.Templates,
	audit auditor,
	tx txManager,
	cfg config.AuthConfig,
	currency string,
) *Service {
	return &Service{
		log:       logger.With("service", "partner"),
		partners:  partners,
		orders:    orders,
		sessions:  sessions,
		lockout:   lockout,
		notifier:  notifier,
		templates: templates,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		currency:  currency,
		now:       time.Now,
	}
}

// viewer is the portal principal resolved to its partner account.
type viewer struct {
	partner *domain.Partner
	member  *domain.TeamMember
	perms   domain.Permissions
}

func (v *viewer) isOwner() bool { return v.member == nil }

// resolveViewer loads the partner (and team member) behind a principal.
// Inactive accounts are refused.
func (s *Service) resolveViewer(ctx context.Context, p domain.Principal) (*viewer, error) {
	switch p.Role {
	case domain.RolePartner:
		partner, err := s.partners.GetByID(ctx, p.SubjectID)
		if err != nil {
			return nil, err
		}
		if !partner.Active {
			return nil, domain.ErrForbidden
		}
		return &viewer{partner: partner, perms: domain.PartnerPermissions()}, nil

	case domain.RoleTeamMember:
		member, err := s.partners.GetTeamMemberByID(ctx, p.SubjectID)
		if err != nil {
			return nil, err
		}
		if !member.Active {
			return nil, domain.ErrForbidden
		}
		partner, err := s.partners.GetByID(ctx, member.PartnerID)
		if err != nil {
			return nil, err
		}
		if !partner.Active {
			return nil, domain.ErrForbidden
		}
		return &viewer{partner: partner, member: member, perms: member.Role.Permissions()}, nil
	}
	return nil, domain.ErrForbidden
}

// viewerFromCtx resolves the authenticated portal principal of ctx.
func (s *Service) viewerFromCtx(ctx context.Context) (*viewer, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	v, err := s.resolveViewer(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve viewer: %w", err)
	}
	return v, nil
}

// partnerView returns the partner record as the viewer may see it. Team
// members never see the owner's access code, and financial terms are hidden
// unless the role allows financials.
func partnerView(p *domain.Partner, perms domain.Permissions, owner bool) *domain.Partner {
	if owner {
		return p
	}
	cp := *p
	cp.AccessCode = ""
	if !perms.CanViewFinancials {
		cp.CommissionPercent = 0
		cp.ClickBountyCents = 0
	}
	return &cp
}

// newAccessCode generates an access code unused by any partner or team member.
func (s *Service) newAccessCode(ctx context.Context, prefix string) (string, error) {
	for range maxCodeAttempts {
		code, err := auth.GenerateAccessCode(prefix)
		if err != nil {
			return "", err
		}
		exists, err := s.partners.AccessCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: could not allocate a unique access code", domain.ErrConflict)
}

const (
	partnerCodePrefix = "TL"
	memberCodePrefix  = "TM"
	maxCodeAttempts   = 5
)
