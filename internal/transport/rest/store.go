package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thronelight/platform/internal/adapter/payments"
	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/partner"
	"github.com/thronelight/platform/internal/service/payment"
	"github.com/thronelight/platform/internal/transport/middleware"
)

const maxWebhookBytes = 512 << 10

type paymentService interface {
	CreateCheckout(ctx context.Context, input payment.CheckoutInput) (*payments.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*payment.WebhookResult, error)
}

type clickTracker interface {
	TrackClick(ctx context.Context, input partner.TrackClickInput) (*partner.ClickResult, error)
}

// StoreHandler serves checkout, the Stripe webhook and referral links.
type StoreHandler struct {
	payments     paymentService
	clicks       clickTracker
	siteURL      string
	secureCookie bool
	log          *slog.Logger
}

// NewStoreHandler creates a StoreHandler.
func NewStoreHandler(payments paymentService, clicks clickTracker, siteURL string, secureCookie bool, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		payments:     payments,
		clicks:       clicks,
		siteURL:      siteURL,
		secureCookie: secureCookie,
		log:          logger.With("handler", "store"),
	}
}

type checkoutRequest struct {
	BookIDs     []string `json:"bookIds"`
	Email       string   `json:"email"`
	CouponCode  string   `json:"couponCode"`
	SubLinkCode string   `json:"subLinkCode"`
}

type checkoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Checkout handles POST /api/checkout.
func (h *StoreHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.payments.CreateCheckout(r.Context(), payment.CheckoutInput{
		BookIDs:     req.BookIDs,
		Email:       req.Email,
		CouponCode:  req.CouponCode,
		SubLinkCode: req.SubLinkCode,
		Ref:         refCookie(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{ID: sess.ID, URL: sess.URL})
}

type webhookResponse struct {
	Received  bool `json:"received"`
	Processed bool `json:"processed"`
}

// Webhook handles POST /api/webhooks/stripe. Only a bad signature is
// rejected; processing failures are acknowledged so Stripe stops retrying.
func (h *StoreHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.payments.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "invalid signature")
			return
		}
		h.log.ErrorContext(r.Context(), "webhook.failure", slog.String("error", err.Error()))
		writeJSON(w, http.StatusOK, webhookResponse{Received: true})
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{Received: true, Processed: res.Processed})
}

// Click handles GET /r/{code}: records the visit, drops the referral
// cookie and sends the visitor to the site. Unknown codes still redirect.
func (h *StoreHandler) Click(w http.ResponseWriter, r *http.Request) {
	res, err := h.clicks.TrackClick(r.Context(), partner.TrackClickInput{
		Code:      chi.URLParam(r, "code"),
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})
	switch {
	case err == nil:
		setRefCookie(w, res.RefCode, h.secureCookie)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
		h.log.DebugContext(r.Context(), "unknown referral code", slog.String("code", chi.URLParam(r, "code")))
	default:
		h.log.ErrorContext(r.Context(), "track click", slog.String("error", err.Error()))
	}

	http.Redirect(w, r, h.siteURL, http.StatusFound)
}
