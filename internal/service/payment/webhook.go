package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/adapter/payments"
	"github.com/thronelight/platform/internal/auth"
	"github.com/thronelight/platform/internal/domain"
)

// WebhookResult reports what happened to a verified event.
type WebhookResult struct {
	EventID string
	Type    string
	// Processed is false when handling failed; the failure is logged and
	// the event is still acknowledged.
	Processed bool
	// Duplicate is true when the event (or its checkout session) was
	// already handled.
	Duplicate bool
	// Ignored is true for event types the platform does not act on.
	Ignored bool
}

const libraryCodePrefix = "LIB"

var errDuplicate = errors.New("already processed")

// HandleWebhook verifies and processes one payment webhook delivery. The
// only error it returns is a signature failure; processing failures are
// reported through WebhookResult.Processed.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := s.verifier.Verify(payload, signature)
	if err != nil {
		s.log.WarnContext(ctx, "webhook signature rejected", slog.String("error", err.Error()))
		return nil, domain.NewValidationError("signature", "invalid webhook signature")
	}

	log := s.log.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))
	log.InfoContext(ctx, "webhook.attempt")

	res := &WebhookResult{EventID: event.ID, Type: event.Type}

	switch {
	case event.Type == payments.EventCheckoutCompleted && event.Checkout != nil:
		err = s.handleCheckout(ctx, event, res)
	case event.Type == payments.EventChargeRefunded && event.Refund != nil:
		err = s.handleRefund(ctx, event, res)
	case event.Type == payments.EventDisputeCreated && event.Dispute != nil:
		err = s.handleDispute(ctx, event, res)
	default:
		res.Ignored = true
	}

	if err != nil {
		log.ErrorContext(ctx, "webhook.failure", slog.String("error", err.Error()))
		return res, nil
	}

	res.Processed = true
	log.InfoContext(ctx, "webhook.success",
		slog.Bool("duplicate", res.Duplicate),
		slog.Bool("ignored", res.Ignored),
	)
	return res, nil
}

// handleCheckout creates the order, its commission and library grants for a
// paid checkout session. A session id is processed at most once: the
// existence check catches sequential redeliveries and the unique constraint
// on the session id catches concurrent ones.
func (s *Service) handleCheckout(ctx context.Context, event *payments.Event, res *WebhookResult) error {
	c := event.Checkout
	if c.PaymentStatus != "" && c.PaymentStatus != "paid" && c.PaymentStatus != "no_payment_required" {
		res.Ignored = true
		return nil
	}
	if c.SessionID == "" {
		return errors.New("checkout event without session id")
	}

	exists, err := s.orders.ExistsBySessionID(ctx, c.SessionID)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if exists {
		res.Duplicate = true
		return nil
	}

	partner, err := s.attributedPartner(ctx, c.PartnerID)
	if err != nil {
		return err
	}

	code, err := auth.GenerateAccessCode(libraryCodePrefix)
	if err != nil {
		return err
	}

	order := s.buildOrder(c, partner)
	var created *domain.Order
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.orders.Create(ctx, order)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return errDuplicate
			}
			return fmt.Errorf("create order: %w", err)
		}

		if partner != nil && c.SubLinkCode != "" {
			if err := s.partners.IncrementSubLinkSales(ctx, c.SubLinkCode); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("count sub-link sale: %w", err)
			}
		}

		orderID := created.ID
		for _, bookID := range created.BookIDs {
			_, err := s.orders.GrantAccess(ctx, &domain.LibraryAccess{
				ID:         uuid.New(),
				Email:      created.Email,
				BookID:     bookID,
				OrderID:    &orderID,
				AccessCode: code,
				GrantedAt:  created.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("grant %s: %w", bookID, err)
			}
		}

		if _, err := s.orders.RecordEvent(ctx, domain.WebhookEvent{ID: event.ID, Type: event.Type, ProcessedAt: s.now().UTC()}); err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		return nil
	})
	if errors.Is(err, errDuplicate) {
		res.Duplicate = true
		return nil
	}
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "order created",
		slog.String("order_id", created.ID.String()),
		slog.String("session_id", created.StripeSessionID),
		slog.Int64("amount_cents", created.AmountCents),
		slog.Int64("commission_cents", created.CommissionCents),
	)

	s.notifyOrder(ctx, created, code)
	if partner != nil {
		s.notifyPartner(ctx, partner, created)
	}
	return nil
}

// attributedPartner parses the partner id from checkout metadata. Missing,
// malformed or deleted partners yield no attribution.
func (s *Service) attributedPartner(ctx context.Context, raw string) (*domain.Partner, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.log.WarnContext(ctx, "checkout has malformed partner id", slog.String("partner_id", raw))
		return nil, nil
	}
	p, err := s.partners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load partner: %w", err)
	}
	return p, nil
}

func (s *Service) buildOrder(c *payments.CheckoutCompleted, partner *domain.Partner) *domain.Order {
	now := s.now().UTC()
	o := &domain.Order{
		ID:               uuid.New(),
		StripeSessionID:  c.SessionID,
		Email:            domain.NormalizeEmail(c.Email),
		AmountCents:      c.AmountCents,
		Currency:         strings.ToLower(c.Currency),
		Status:           domain.OrderStatusCompleted,
		CommissionStatus: domain.CommissionNone,
		BookIDs:          c.BookIDs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if o.Currency == "" {
		o.Currency = s.cfg.Currency
	}
	if c.PaymentIntentID != "" {
		pi := c.PaymentIntentID
		o.PaymentIntentID = &pi
	}
	if c.Country != "" {
		country := strings.ToUpper(c.Country)
		o.Country = &country
	}
	if partner != nil {
		id := partner.ID
		o.PartnerID = &id
		o.CommissionCents = domain.CommissionFor(c.AmountCents, partner.CommissionPercent)
		if o.CommissionCents > 0 {
			o.CommissionStatus = domain.CommissionPending
			matures := domain.MaturityDate(now, s.cfg.CommissionMaturityDays)
			o.MaturesAt = &matures
		}
		if c.SubLinkCode != "" {
			code := c.SubLinkCode
			o.SubLinkCode = &code
		}
	}
	return o
}

// handleRefund marks the order refunded, voids its commission and revokes
// its library grants. Partial refunds are treated the same as full ones.
func (s *Service) handleRefund(ctx context.Context, event *payments.Event, res *WebhookResult) error {
	r := event.Refund
	return s.onceForEvent(ctx, event, res, func(ctx context.Context) error {
		o, err := s.orderForIntent(ctx, r.PaymentIntentID)
		if err != nil || o == nil {
			return err
		}

		commission := o.CommissionStatus
		if commission != domain.CommissionNone {
			commission = domain.CommissionVoided
		}
		if _, err := s.orders.UpdateStatus(ctx, o.ID, domain.OrderStatusRefunded, commission); err != nil {
			return fmt.Errorf("refund order: %w", err)
		}
		revoked, err := s.orders.RevokeAccessByOrder(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("revoke access: %w", err)
		}
		s.log.InfoContext(ctx, "order refunded",
			slog.String("order_id", o.ID.String()),
			slog.Int64("refunded_cents", r.AmountRefundedCents),
			slog.Bool("partial", !r.FullyRefunded),
			slog.Int64("revoked", revoked),
		)
		return nil
	})
}

// handleDispute marks a disputed order and holds its commission.
func (s *Service) handleDispute(ctx context.Context, event *payments.Event, res *WebhookResult) error {
	d := event.Dispute
	return s.onceForEvent(ctx, event, res, func(ctx context.Context) error {
		o, err := s.orderForIntent(ctx, d.PaymentIntentID)
		if err != nil || o == nil {
			return err
		}

		commission := o.CommissionStatus
		if commission != domain.CommissionNone {
			commission = domain.CommissionHeld
		}
		if _, err := s.orders.UpdateStatus(ctx, o.ID, domain.OrderStatusDisputed, commission); err != nil {
			return fmt.Errorf("dispute order: %w", err)
		}
		s.log.WarnContext(ctx, "order disputed", slog.String("order_id", o.ID.String()), slog.String("reason", d.Reason))
		return nil
	})
}

// onceForEvent runs fn in a transaction that first records the event id.
// Redelivered events are reported as duplicates without running fn.
func (s *Service) onceForEvent(ctx context.Context, event *payments.Event, res *WebhookResult, fn func(ctx context.Context) error) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		fresh, err := s.orders.RecordEvent(ctx, domain.WebhookEvent{ID: event.ID, Type: event.Type, ProcessedAt: s.now().UTC()})
		if err != nil {
			return fmt.Errorf("record event: %w", err)
		}
		if !fresh {
			return errDuplicate
		}
		return fn(ctx)
	})
	if errors.Is(err, errDuplicate) {
		res.Duplicate = true
		return nil
	}
	return err
}

// orderForIntent loads the order paid by a payment intent. Unknown intents
// are logged and yield nil.
func (s *Service) orderForIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	if paymentIntentID == "" {
		s.log.WarnContext(ctx, "event without payment intent")
		return nil, nil
	}
	o, err := s.orders.GetByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "no order for payment intent", slog.String("payment_intent", paymentIntentID))
			return nil, nil
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	return o, nil
}

func (s *Service) notifyOrder(ctx context.Context, o *domain.Order, code string) {
	if o.Email == "" {
		return
	}
	msg, err := s.templates.OrderConfirmation(email.OrderConfirmation{
		Email:       o.Email,
		Books:       s.bookTitles(o.BookIDs),
		AccessCode:  code,
		AmountCents: o.AmountCents,
		Currency:    o.Currency,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "render order confirmation", slog.String("error", err.Error()))
		return
	}
	s.notifier.Notify(ctx, msg)
}

func (s *Service) notifyPartner(ctx context.Context, p *domain.Partner, o *domain.Order) {
	d := email.PartnerSale{
		Email:           p.Email,
		Name:            p.Name,
		AmountCents:     o.AmountCents,
		CommissionCents: o.CommissionCents,
		Currency:        o.Currency,
	}
	if o.SubLinkCode != nil {
		d.SubLinkCode = *o.SubLinkCode
	}
	if o.MaturesAt != nil {
		d.MaturesAt = *o.MaturesAt
	}
	msg, err := s.templates.PartnerSale(d)
	if err != nil {
		s.log.ErrorContext(ctx, "render partner sale", slog.String("error", err.Error()))
		return
	}
	s.notifier.Notify(ctx, msg)
}
