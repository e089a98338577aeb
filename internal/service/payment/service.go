package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/adapter/payments"
	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
)

type orderRepo interface {
	ExistsBySessionID(ctx context.Context, sessionID string) (bool, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, commission domain.CommissionStatus) (*domain.Order, error)
	RecordEvent(ctx context.Context, e domain.WebhookEvent) (bool, error)
	GrantAccess(ctx context.Context, a *domain.LibraryAccess) (*domain.LibraryAccess, error)
	RevokeAccessByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type partnerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Partner, error)
	GetByCouponCode(ctx context.Context, code string) (*domain.Partner, error)
	GetSubLinkByCode(ctx context.Context, code string) (*domain.SubLink, error)
	IncrementSubLinkSales(ctx context.Context, code string) error
}

type checkoutClient interface {
	CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error)
}

type eventVerifier interface {
	Verify(payload []byte, signatureHeader string) (*payments.Event, error)
}

type notifier interface {
	Notify(ctx context.Context, msg email.Message)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements checkout and payment webhook processing.
type Service struct {
	log       *slog.Logger
	orders    orderRepo
	partners  partnerRepo
	checkout  checkoutClient
	verifier  eventVerifier
	notifier  notifier
	templates *email.Templates
	tx        txManager
	cfg       config.StripeConfig
	catalog   map[string]config.CatalogItem
	now       func() time.Time
}

// NewService creates a new payment service.
func NewService(
	logger *slog.Logger,
	orders orderRepo,
	partners partnerRepo,
	checkout checkoutClient,
	verifier eventVerifier,
	notifier notifier,
	templates *email.Templates,
	tx txManager,
	cfg config.StripeConfig,
) *Service {
	catalog := make(map[string]config.CatalogItem, len(cfg.Catalog))
	for _, item := range cfg.Catalog {
		catalog[item.ID] = item
	}
	return &Service{
		log:       logger.With("service", "payment"),
		orders:    orders,
		partners:  partners,
		checkout:  checkout,
		verifier:  verifier,
		notifier:  notifier,
		templates: templates,
		tx:        tx,
		cfg:       cfg,
		catalog:   catalog,
		now:       time.Now,
	}
}

// bookTitles maps catalog ids to titles, keeping unknown ids as-is.
func (s *Service) bookTitles(ids []string) []string {
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.catalog[id]; ok && item.Title != "" {
			titles = append(titles, item.Title)
			continue
		}
		titles = append(titles, id)
	}
	return titles
}
