package partner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ClickResult is the attribution resolved from a tracking code.
type ClickResult struct {
	Partner *domain.Partner
	SubLink *domain.SubLink
	// RefCode is the value stored in the referral cookie.
	RefCode string
}

// TrackClick resolves a sub-link code or partner slug, bumps its click
// counters and records the visit with hashed client identifiers.
func (s *Service) TrackClick(ctx context.Context, input TrackClickInput) (*ClickResult, error) {
	code := strings.ToLower(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}

	res, err := s.resolveCode(ctx, code)
	if err != nil {
		return nil, err
	}

	click := domain.Click{
		ID:            uuid.New(),
		PartnerID:     res.Partner.ID,
		IPHash:        hashIdentifier(input.IP),
		UserAgentHash: hashIdentifier(input.UserAgent),
		Referrer:      truncate(input.Referrer, 500),
		CreatedAt:     s.now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.partners.IncrementClicks(ctx, res.Partner.ID); err != nil {
			return err
		}
		if res.SubLink != nil {
			id := res.SubLink.ID
			click.SubLinkID = &id
			if err := s.partners.IncrementSubLinkClicks(ctx, id); err != nil {
				return err
			}
		}
		return s.partners.RecordClick(ctx, click)
	})
	if err != nil {
		return nil, fmt.Errorf("partner.TrackClick: %w", err)
	}
	return res, nil
}

func (s *Service) resolveCode(ctx context.Context, code string) (*ClickResult, error) {
	link, err := s.partners.GetSubLinkByCode(ctx, code)
	switch {
	case err == nil:
		p, err := s.partners.GetByID(ctx, link.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("partner.TrackClick partner: %w", err)
		}
		if !p.Active {
			return nil, domain.ErrNotFound
		}
		return &ClickResult{Partner: p, SubLink: link, RefCode: link.Code}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("partner.TrackClick sub-link: %w", err)
	}

	p, err := s.partners.GetBySlug(ctx, code)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domain.ErrNotFound
	}
	return &ClickResult{Partner: p, RefCode: p.Slug}, nil
}

// hashIdentifier returns a short irreversible digest of a client identifier.
func hashIdentifier(v string) string {
	if v == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:16])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
