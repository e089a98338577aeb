package payments

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Event types the platform acts on.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventChargeRefunded    = "charge.refunded"
	EventDisputeCreated    = "charge.dispute.created"
)

// Event is a verified webhook event. At most one of the payload fields is
// set, matching Type; other types carry none.
type Event struct {
	ID       string
	Type     string
	Checkout *CheckoutCompleted
	Refund   *ChargeRefunded
	Dispute  *DisputeCreated
}

// CheckoutCompleted is a paid checkout session.
type CheckoutCompleted struct {
	SessionID       string
	PaymentIntentID string
	PaymentStatus   string
	Email           string
	Country         string
	AmountCents     int64
	Currency        string
	PartnerID       string
	SubLinkCode     string
	BookIDs         []string
}

// ChargeRefunded is a full or partial refund of a charge.
type ChargeRefunded struct {
	ChargeID            string
	PaymentIntentID     string
	AmountRefundedCents int64
	FullyRefunded       bool
}

// DisputeCreated is a chargeback opened against a charge.
type DisputeCreated struct {
	DisputeID       string
	ChargeID        string
	PaymentIntentID string
	Reason          string
}

// Verifier checks webhook signatures.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

// NewVerifier creates a Verifier for the endpoint signing secret.
func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	return &Verifier{secret: secret, tolerance: tolerance}
}

// Verify checks the Stripe-Signature header and decodes the event.
func (v *Verifier) Verify(payload []byte, signatureHeader string) (*Event, error) {
	raw, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}
	return decodeEvent(raw)
}

func decodeEvent(raw stripe.Event) (*Event, error) {
	e := &Event{ID: raw.ID, Type: string(raw.Type)}
	if raw.Data == nil {
		return e, nil
	}

	switch e.Type {
	case EventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(raw.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("decode checkout session: %w", err)
		}
		e.Checkout = checkoutFromStripe(&s)
	case EventChargeRefunded:
		var c stripe.Charge
		if err := json.Unmarshal(raw.Data.Raw, &c); err != nil {
			return nil, fmt.Errorf("decode charge: %w", err)
		}
		e.Refund = &ChargeRefunded{
			ChargeID:            c.ID,
			PaymentIntentID:     paymentIntentID(c.PaymentIntent),
			AmountRefundedCents: c.AmountRefunded,
			FullyRefunded:       c.Refunded,
		}
	case EventDisputeCreated:
		var d stripe.Dispute
		if err := json.Unmarshal(raw.Data.Raw, &d); err != nil {
			return nil, fmt.Errorf("decode dispute: %w", err)
		}
		e.Dispute = &DisputeCreated{
			DisputeID:       d.ID,
			PaymentIntentID: paymentIntentID(d.PaymentIntent),
			Reason:          string(d.Reason),
		}
		if d.Charge != nil {
			e.Dispute.ChargeID = d.Charge.ID
		}
	}
	return e, nil
}

func checkoutFromStripe(s *stripe.CheckoutSession) *CheckoutCompleted {
	c := &CheckoutCompleted{
		SessionID:       s.ID,
		PaymentIntentID: paymentIntentID(s.PaymentIntent),
		PaymentStatus:   string(s.PaymentStatus),
		Email:           s.CustomerEmail,
		AmountCents:     s.AmountTotal,
		Currency:        string(s.Currency),
		PartnerID:       s.Metadata[MetaPartnerID],
		SubLinkCode:     s.Metadata[MetaSubLinkCode],
	}
	if d := s.CustomerDetails; d != nil {
		if d.Email != "" {
			c.Email = d.Email
		}
		if d.Address != nil {
			c.Country = d.Address.Country
		}
	}
	for _, id := range strings.Split(s.Metadata[MetaBookIDs], ",") {
		if id = strings.TrimSpace(id); id != "" {
			c.BookIDs = append(c.BookIDs, id)
		}
	}
	return c
}

func paymentIntentID(pi *stripe.PaymentIntent) string {
	if pi == nil {
		return ""
	}
	return pi.ID
}
