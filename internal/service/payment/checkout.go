package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/thronelight/platform/internal/adapter/payments"
	"github.com/thronelight/platform/internal/domain"
)

// attribution is the partner a checkout is credited to.
type attribution struct {
	partner     *domain.Partner
	subLinkCode string
}

// CreateCheckout prices the requested books, applies the attributed
// partner's discount and opens a hosted checkout session.
func (s *Service) CreateCheckout(ctx context.Context, input CheckoutInput) (*payments.CheckoutSession, error) {
	known := make(map[string]bool, len(s.catalog))
	for id := range s.catalog {
		known[id] = true
	}
	if err := input.Validate(known); err != nil {
		return nil, err
	}

	attr, err := s.attribute(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("payment.CreateCheckout attribution: %w", err)
	}

	discount := 0.0
	meta := map[string]string{payments.MetaBookIDs: strings.Join(input.BookIDs, ",")}
	if attr != nil {
		discount = attr.partner.DiscountPercent
		meta[payments.MetaPartnerID] = attr.partner.ID.String()
		if attr.subLinkCode != "" {
			meta[payments.MetaSubLinkCode] = attr.subLinkCode
		}
	}

	items := make([]payments.LineItem, 0, len(input.BookIDs))
	for _, id := range input.BookIDs {
		item := s.catalog[id]
		items = append(items, payments.LineItem{Name: item.Title, UnitAmountCents: discounted(item.PriceCents, discount)})
	}

	sess, err := s.checkout.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		Email:    domain.NormalizeEmail(input.Email),
		Currency: s.cfg.Currency,
		Items:    items,
		Metadata: meta,
	})
	if err != nil {
		return nil, fmt.Errorf("payment.CreateCheckout: %w", err)
	}

	s.log.InfoContext(ctx, "checkout created",
		slog.String("session_id", sess.ID),
		slog.Int("items", len(items)),
		slog.Bool("attributed", attr != nil),
	)
	return sess, nil
}

// attribute resolves the partner credited for a checkout. An explicit
// sub-link wins over a coupon, which wins over the referral cookie.
// Unknown or inactive codes leave the checkout unattributed.
func (s *Service) attribute(ctx context.Context, input CheckoutInput) (*attribution, error) {
	if code := strings.ToLower(strings.TrimSpace(input.SubLinkCode)); code != "" {
		attr, err := s.bySubLink(ctx, code)
		if attr != nil || err != nil {
			return attr, err
		}
	}

	if code := strings.ToUpper(strings.TrimSpace(input.CouponCode)); code != "" {
		p, err := s.partners.GetByCouponCode(ctx, code)
		switch {
		case err == nil && p.Active:
			return &attribution{partner: p}, nil
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}

	if ref := strings.ToLower(strings.TrimSpace(input.Ref)); ref != "" {
		attr, err := s.bySubLink(ctx, ref)
		if attr != nil || err != nil {
			return attr, err
		}
		p, err := s.partners.GetBySlug(ctx, ref)
		switch {
		case err == nil && p.Active:
			return &attribution{partner: p}, nil
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}
	return nil, nil
}

func (s *Service) bySubLink(ctx context.Context, code string) (*attribution, error) {
	link, err := s.partners.GetSubLinkByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p, err := s.partners.GetByID(ctx, link.PartnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !p.Active {
		return nil, nil
	}
	return &attribution{partner: p, subLinkCode: link.Code}, nil
}

// discounted applies percent off cents, rounding the discount to whole
// cents. The result never drops below one cent.
func discounted(cents int64, percent float64) int64 {
	if percent <= 0 {
		return cents
	}
	off := int64(math.Round(float64(cents) * percent / 100))
	if cents-off < 1 {
		return 1
	}
	return cents - off
}
