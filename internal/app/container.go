package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/thronelight/platform/internal/adapter/cache"
	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/adapter/filestore"
	"github.com/thronelight/platform/internal/adapter/objectstore"
	"github.com/thronelight/platform/internal/adapter/payments"
	"github.com/thronelight/platform/internal/adapter/postgres"
	adminrepo "github.com/thronelight/platform/internal/adapter/postgres/adminuser"
	auditrepo "github.com/thronelight/platform/internal/adapter/postgres/audit"
	feedbackrepo "github.com/thronelight/platform/internal/adapter/postgres/feedback"
	narrationrepo "github.com/thronelight/platform/internal/adapter/postgres/narration"
	orderrepo "github.com/thronelight/platform/internal/adapter/postgres/order"
	partnerrepo "github.com/thronelight/platform/internal/adapter/postgres/partner"
	readerrepo "github.com/thronelight/platform/internal/adapter/postgres/reader"
	reviewrepo "github.com/thronelight/platform/internal/adapter/postgres/review"
	sessionrepo "github.com/thronelight/platform/internal/adapter/postgres/session"
	submissionrepo "github.com/thronelight/platform/internal/adapter/postgres/submission"
	subscriberrepo "github.com/thronelight/platform/internal/adapter/postgres/subscriber"
	ticketrepo "github.com/thronelight/platform/internal/adapter/postgres/ticket"
	"github.com/thronelight/platform/internal/adapter/provider/speech"
	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/admin"
	"github.com/thronelight/platform/internal/service/audit"
	"github.com/thronelight/platform/internal/service/content"
	"github.com/thronelight/platform/internal/service/gathering"
	"github.com/thronelight/platform/internal/service/library"
	"github.com/thronelight/platform/internal/service/narration"
	"github.com/thronelight/platform/internal/service/order"
	"github.com/thronelight/platform/internal/service/partner"
	"github.com/thronelight/platform/internal/service/payment"
	"github.com/thronelight/platform/internal/service/session"
)

type lockoutStore interface {
	Get(ctx context.Context, key string) (domain.LockoutState, error)
	RecordFailure(ctx context.Context, key string, now time.Time, threshold int, window time.Duration) (domain.LockoutState, error)
	Clear(ctx context.Context, key string) error
}

type segmentCache interface {
	Get(ctx context.Context, hash string) (*domain.AudioSegment, bool, error)
	Set(ctx context.Context, seg *domain.AudioSegment) error
}

// Container holds the connected infrastructure and every service built on
// it. The HTTP server and the operator CLI share it.
type Container struct {
	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Notifier *email.Notifier

	Sessions   *session.Service
	Audit      *audit.Service
	Admin      *admin.Service
	Partners   *partner.Service
	Payments   *payment.Service
	Orders     *order.Service
	Library    *library.Service
	Content    *content.Service
	Gatherings *gathering.Service
	// Narration is nil unless speech synthesis and storage are configured.
	Narration *narration.Service
}

// NewContainer connects to PostgreSQL and, when configured, Redis, then
// wires every service. Without Redis the lockout store and segment cache
// are kept in memory.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app.NewContainer: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("app.NewContainer: %w", err)
		}
	} else {
		logger.Warn("redis not configured, using in-memory lockout and segment cache")
	}

	c, err := wire(ctx, cfg, logger, pool, rdb)
	if err != nil {
		return nil, fmt.Errorf("app.NewContainer: %w", err)
	}
	return c, nil
}

// wire builds the services over already connected infrastructure. rdb may
// be nil. On error the connections are closed.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) (*Container, error) {
	c := &Container{Pool: pool, Redis: rdb}

	sender, err := email.NewSender(ctx, cfg.Email, logger)
	if err != nil {
		c.Close(ctx)
		return nil, err
	}
	templates, err := email.NewTemplates(cfg.Server.SiteURL)
	if err != nil {
		c.Close(ctx)
		return nil, err
	}
	c.Notifier = email.NewNotifier(sender, logger, cfg.Email.SendTimeout)

	txm := postgres.NewTxManager(pool)
	orders := orderrepo.New(pool)
	partners := partnerrepo.New(pool)

	var lockout lockoutStore
	if c.Redis != nil {
		lockout = cache.NewRedisLockoutStore(c.Redis)
	} else {
		lockout = cache.NewMemoryLockoutStore()
	}

	tokens := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL)
	c.Sessions = session.NewService(logger, sessionrepo.New(pool), tokens, cfg.Auth.SessionTTL)
	c.Audit = audit.NewService(logger, auditrepo.New(pool))

	c.Admin = admin.NewService(logger, adminrepo.New(pool), c.Sessions, lockout, c.Audit, txm, cfg.Auth)
	c.Partners = partner.NewService(logger, partners, orders, c.Sessions, lockout, c.Notifier, templates, c.Audit, txm, cfg.Auth, cfg.Stripe.Currency)
	c.Payments = payment.NewService(
		logger, orders, partners,
		payments.NewClient(cfg.Stripe),
		payments.NewVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance),
		c.Notifier, templates, txm, cfg.Stripe,
	)
	c.Orders = order.NewService(logger, orders)
	c.Library = library.NewService(logger, orders, readerrepo.New(pool), c.Sessions, lockout, c.Notifier, templates, c.Audit, txm, cfg.Auth, cfg.Stripe.Catalog)
	c.Content = content.NewService(logger, content.Repos{
		Reviews:     reviewrepo.New(pool),
		Feedback:    feedbackrepo.New(pool),
		Tickets:     ticketrepo.New(pool),
		Subscribers: subscriberrepo.New(pool),
		Submissions: submissionrepo.New(pool),
	}, c.Notifier, templates, c.Audit, txm, cfg.Email.AdminNotify)
	c.Gatherings = gathering.NewService(logger, filestore.NewGatheringStore(cfg.FileStore.GatheringsPath))

	if cfg.NarrationEnabled() {
		assets, err := objectstore.NewClient(ctx, cfg.Storage)
		if err != nil {
			c.Close(ctx)
			return nil, err
		}
		var segments segmentCache
		if c.Redis != nil {
			segments = cache.NewRedisSegmentCache(c.Redis, cfg.Narration.CacheTTL)
		} else {
			segments = cache.NewMemorySegmentCache(cfg.Narration.CacheTTL)
		}
		c.Narration = narration.NewService(
			logger, narrationrepo.New(pool), segments,
			speech.NewProvider(cfg.Speech, logger), assets,
			c.Audit, txm, cfg.Narration, cfg.Speech.DefaultVoice,
		)
	} else {
		logger.Info("narration disabled, speech key or storage bucket missing")
	}

	return c, nil
}

// Close waits for queued email until ctx is done and releases connections.
func (c *Container) Close(ctx context.Context) {
	if c.Notifier != nil {
		c.Notifier.Wait(ctx)
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	c.Pool.Close()
}
