package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/config"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/transport/middleware"
)

type sessionService interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
	End(ctx context.Context, sessionID uuid.UUID) error
}

type adminRouterService interface {
	adminService
	Authorize(ctx context.Context, scope domain.AdminScope) error
}

type partnerRouterService interface {
	partnerService
	clickTracker
}

// Services are the application services behind the HTTP API. Narration is
// optional; its routes are not mounted when it is nil.
type Services struct {
	Sessions   sessionService
	Admin      adminRouterService
	Audit      auditService
	Partners   partnerRouterService
	Payments   paymentService
	Orders     orderService
	Library    libraryService
	Content    contentService
	Gatherings gatheringService
	Narration  narrationService
}

// RouterConfig carries everything NewRouter needs besides the services.
type RouterConfig struct {
	Auth      config.AuthConfig
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	SiteURL   string
	Version   string
	Checks    []Check
	Limiter   *middleware.RateLimiter
	Logger    *slog.Logger
}

// NewRouter builds the chi router for the whole HTTP surface.
func NewRouter(cfg RouterConfig, svc Services) http.Handler {
	log := cfg.Logger
	cookies := newSessionCookies(cfg.Auth)

	health := NewHealthHandler(cfg.Version, cfg.Checks...)
	store := NewStoreHandler(svc.Payments, svc.Partners, cfg.SiteURL, cfg.Auth.CookieSecure, log)
	partners := NewPartnerHandler(svc.Partners, cookies, log)
	readers := NewReaderHandler(svc.Library, svc.Sessions, cookies, log)
	admins := NewAdminHandler(svc.Admin, svc.Audit, cookies, log)
	orders := NewOrderHandler(svc.Orders, log)
	content := NewContentHandler(svc.Content, log)
	gatherings := NewGatheringHandler(svc.Gatherings, log)

	loginLimit := cfg.Limiter.Limit("login", cfg.RateLimit.LoginPerMinute)
	publicLimit := cfg.Limiter.Limit("public", cfg.RateLimit.PublicPerMinute)
	narrationLimit := cfg.Limiter.Limit("narration", cfg.RateLimit.NarrationPerMinute)
	trusted, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Error("ignoring trusted proxies", slog.String("error", err.Error()))
		trusted = nil
	}
	scope := func(s domain.AdminScope) middleware.Middleware {
		return middleware.RequireScope(svc.Admin, s, log)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP(trusted))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Session(svc.Sessions, cfg.Auth.CookieName, log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	r.Get("/r/{code}", store.Click)

	r.Route("/api", func(r chi.Router) {
		r.With(publicLimit).Post("/checkout", store.Checkout)
		r.Post("/webhooks/stripe", store.Webhook)

		r.Route("/partner", func(r chi.Router) {
			r.With(loginLimit).Post("/login", partners.Login)
			r.Post("/logout", partners.Logout)
			r.Get("/session", partners.Session)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RolePartner, domain.RoleTeamMember))
				r.Get("/dashboard", partners.Dashboard)
				r.Get("/sublinks", partners.ListSubLinks)
				r.Post("/sublinks", partners.CreateSubLink)
				r.Delete("/sublinks/{id}", partners.DeleteSubLink)
				r.Get("/team", partners.ListTeam)
				r.Post("/team", partners.CreateTeamMember)
				r.Patch("/team/{id}", partners.UpdateTeamMember)
				r.Delete("/team/{id}", partners.DeactivateTeamMember)
			})
		})

		r.Route("/reader", func(r chi.Router) {
			r.With(loginLimit).Post("/login", readers.Login)
			r.Post("/logout", readers.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleReader))
				r.Get("/library", readers.Library)
				r.Get("/books/{bookID}/position", readers.GetPosition)
				r.Put("/books/{bookID}/position", readers.SavePosition)
			})
		})

		var narration *NarrationHandler
		if svc.Narration != nil {
			narration = NewNarrationHandler(svc.Narration, log)
			r.Route("/narration", func(r chi.Router) {
				r.With(narrationLimit).Post("/segments", narration.Segment)
				r.With(publicLimit).Post("/reports", narration.Report)
			})
		}

		r.Get("/reviews", content.PublicReviews)
		r.With(publicLimit).Post("/reviews", content.CreateReview)
		r.With(publicLimit).Post("/feedback", content.CreateFeedback)
		r.With(publicLimit).Post("/support/tickets", content.CreateTicket)
		r.With(publicLimit).Post("/subscribers", content.Subscribe)
		r.With(publicLimit).Post("/subscribers/unsubscribe", content.Unsubscribe)
		r.With(publicLimit).Post("/submissions", content.CreateSubmission)

		r.Get("/gatherings", gatherings.List)
		r.Get("/gatherings/{id}", gatherings.Get)
		r.With(publicLimit).Post("/gatherings/{id}/rsvp", gatherings.RSVP)

		r.Route("/admin", func(r chi.Router) {
			r.With(loginLimit).Post("/login", admins.Login)
			r.Post("/logout", admins.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(domain.RoleAdmin))

				r.Get("/me", admins.Me)
				r.Post("/me/password", admins.ChangePassword)

				r.Route("/admins", func(r chi.Router) {
					r.Get("/", admins.ListAdmins)
					r.Post("/", admins.CreateAdmin)
					r.Patch("/{id}", admins.UpdateAdmin)
					r.Delete("/{id}", admins.DeleteAdmin)
					r.Get("/{id}/activity", admins.AdminActivity)
				})
				r.Get("/audit", admins.EntityHistory)

				r.With(scope(domain.ScopePartners)).Route("/partners", func(r chi.Router) {
					r.Get("/", partners.ListPartners)
					r.Post("/", partners.CreatePartner)
					r.Get("/{id}", partners.GetPartner)
					r.Patch("/{id}", partners.UpdatePartner)
					r.Delete("/{id}", partners.DeletePartner)
					r.Get("/{id}/team", partners.ListPartnerTeam)
					r.Post("/{id}/access-code", partners.RegenerateAccessCode)
				})

				r.With(scope(domain.ScopeAccessCodes)).Route("/access-codes", func(r chi.Router) {
					r.Get("/", readers.ListAccess)
					r.Post("/", readers.GrantAccess)
					r.Delete("/{id}", readers.RevokeAccess)
				})

				r.With(scope(domain.ScopeReviews)).Route("/reviews", func(r chi.Router) {
					r.Get("/", content.ListReviews)
					r.Patch("/{id}", content.UpdateReview)
					r.Delete("/{id}", content.DeleteReview)
				})

				r.With(scope(domain.ScopeFeedback)).Route("/feedback", func(r chi.Router) {
					r.Get("/", content.ListFeedback)
					r.Patch("/{id}", content.UpdateFeedback)
					r.Delete("/{id}", content.DeleteFeedback)
				})

				r.With(scope(domain.ScopeTickets)).Route("/tickets", func(r chi.Router) {
					r.Get("/", content.ListTickets)
					r.Get("/{id}", content.GetTicket)
					r.Patch("/{id}", content.UpdateTicket)
					r.Post("/{id}/reply", content.ReplyToTicket)
					r.Delete("/{id}", content.DeleteTicket)
				})

				r.With(scope(domain.ScopeSubscribers)).Route("/subscribers", func(r chi.Router) {
					r.Get("/", content.ListSubscribers)
					r.Patch("/{id}", content.UpdateSubscriber)
					r.Delete("/{id}", content.DeleteSubscriber)
				})

				r.With(scope(domain.ScopeSubmissions)).Route("/submissions", func(r chi.Router) {
					r.Get("/", content.ListSubmissions)
					r.Patch("/{id}", content.UpdateSubmission)
					r.Delete("/{id}", content.DeleteSubmission)
				})

				r.With(scope(domain.ScopeOrders)).Group(func(r chi.Router) {
					r.Get("/orders", orders.ListOrders)
					r.Get("/orders/export", orders.ExportOrders)
					r.Get("/orders/{id}", orders.GetOrder)
					r.Get("/commissions/maturing", orders.MaturingCommissions)
					r.Post("/commissions/mature", orders.MatureCommissions)
				})

				r.With(scope(domain.ScopeAnalytics)).Get("/analytics/map", orders.CountryStats)

				r.With(scope(domain.ScopeReaders)).Group(func(r chi.Router) {
					r.Get("/readers/active", readers.ActiveReaders)
					r.Get("/gatherings", gatherings.ListAll)
					r.Post("/gatherings", gatherings.Create)
					r.Get("/gatherings/{id}/attendees", gatherings.Attendees)
				})

				if narration != nil {
					r.With(scope(domain.ScopeNarration)).Route("/narration/reports", func(r chi.Router) {
						r.Get("/", narration.ListReports)
						r.Patch("/{id}", narration.UpdateReport)
					})
				}
			})
		})
	})

	return r
}
