// Package payments wraps the Stripe API: checkout session creation and
// webhook signature verification.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/thronelight/platform/internal/config"
)

// Metadata keys attached to checkout sessions and read back by the webhook.
const (
	MetaPartnerID   = "partner_id"
	MetaSubLinkCode = "sub_link_code"
	MetaBookIDs     = "book_ids"
)

// LineItem is one priced product in a checkout.
type LineItem struct {
	Name            string
	UnitAmountCents int64
}

// CheckoutRequest describes a hosted checkout to create.
type CheckoutRequest struct {
	Email             string
	Currency          string
	Items             []LineItem
	Metadata          map[string]string
	ClientReferenceID string
}

// CheckoutSession is the created session and its redirect URL.
type CheckoutSession struct {
	ID  string
	URL string
}

// Client creates Stripe checkout sessions.
type Client struct {
	sessions   session.Client
	successURL string
	cancelURL  string
}

// NewClient creates a client against the live Stripe API.
func NewClient(cfg config.StripeConfig) *Client {
	return newClient(cfg, stripe.GetBackend(stripe.APIBackend))
}

func newClient(cfg config.StripeConfig, backend stripe.Backend) *Client {
	return &Client{
		sessions:   session.Client{B: backend, Key: cfg.SecretKey},
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

// CreateCheckoutSession creates a one-time payment session.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("payments: checkout needs at least one item")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
	}
	for _, item := range req.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(item.UnitAmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := c.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
