package partner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/adapter/email"
	"github.com/thronelight/platform/internal/domain"
)

const auditEntity = "partner"

// CreatePartnerResult is the new partner plus whether the welcome email was
// sent.
type CreatePartnerResult struct {
	Partner   *domain.Partner
	EmailSent bool
}

// ListPartners returns every partner account.
func (s *Service) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partners.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("partner.ListPartners: %w", err)
	}
	return partners, nil
}

// GetPartner returns one partner account.
func (s *Service) GetPartner(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	p, err := s.partners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("partner.GetPartner: %w", err)
	}
	return p, nil
}

// ListPartnerTeam returns the team members of a partner.
func (s *Service) ListPartnerTeam(ctx context.Context, partnerID uuid.UUID) ([]domain.TeamMember, error) {
	members, err := s.partners.ListTeamMembers(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("partner.ListPartnerTeam: %w", err)
	}
	return members, nil
}

// CreatePartner creates a partner with a generated access code, records the
// change and waits for the welcome email.
func (s *Service) CreatePartner(ctx context.Context, input CreatePartnerInput) (*CreatePartnerResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = input.Name
	}

	p := &domain.Partner{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(input.Name),
		Email:             domain.NormalizeEmail(input.Email),
		Slug:              domain.Slugify(slug),
		CouponCode:        couponPtr(input.CouponCode),
		CommissionPercent: input.CommissionPercent,
		ClickBountyCents:  input.ClickBountyCents,
		DiscountPercent:   input.DiscountPercent,
		Active:            true,
	}

	var created *domain.Partner
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		code, err := s.newAccessCode(ctx, partnerCodePrefix)
		if err != nil {
			return err
		}
		p.AccessCode = code

		created, err = s.partners.Create(ctx, p)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, created.ID, domain.AuditCreate, map[string]any{
			"name":               created.Name,
			"slug":               created.Slug,
			"commission_percent": created.CommissionPercent,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("partner.CreatePartner: %w", err)
	}

	s.log.InfoContext(ctx, "partner created", slog.String("partner_id", created.ID.String()), slog.String("slug", created.Slug))

	return &CreatePartnerResult{Partner: created, EmailSent: s.sendWelcome(ctx, created)}, nil
}

// UpdatePartner applies the non-nil fields of input. Deactivating a partner
// ends its sessions.
func (s *Service) UpdatePartner(ctx context.Context, id uuid.UUID, input UpdatePartnerInput) (*domain.Partner, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Partner
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.partners.GetByID(ctx, id)
		if err != nil {
			return err
		}

		changes := map[string]any{}
		if input.Name != nil {
			p.Name = strings.TrimSpace(*input.Name)
			changes["name"] = p.Name
		}
		if input.Email != nil {
			p.Email = domain.NormalizeEmail(*input.Email)
			changes["email"] = p.Email
		}
		if input.Slug != nil {
			p.Slug = domain.Slugify(*input.Slug)
			changes["slug"] = p.Slug
		}
		if input.CouponCode != nil {
			p.CouponCode = couponPtr(*input.CouponCode)
			changes["coupon_code"] = p.CouponCode
		}
		if input.CommissionPercent != nil {
			p.CommissionPercent = *input.CommissionPercent
			changes["commission_percent"] = p.CommissionPercent
		}
		if input.ClickBountyCents != nil {
			p.ClickBountyCents = *input.ClickBountyCents
			changes["click_bounty_cents"] = p.ClickBountyCents
		}
		if input.DiscountPercent != nil {
			p.DiscountPercent = *input.DiscountPercent
			changes["discount_percent"] = p.DiscountPercent
		}
		if input.Active != nil {
			p.Active = *input.Active
			changes["active"] = p.Active
		}

		updated, err = s.partners.Update(ctx, p)
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, id, domain.AuditUpdate, changes)
	})
	if err != nil {
		return nil, fmt.Errorf("partner.UpdatePartner: %w", err)
	}

	if !updated.Active {
		s.endSessions(ctx, updated.ID)
	}
	return updated, nil
}

// DeletePartner removes a partner and its team, sub-links and clicks.
func (s *Service) DeletePartner(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.partners.Delete(ctx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, auditEntity, id, domain.AuditDelete, nil)
	})
	if err != nil {
		return fmt.Errorf("partner.DeletePartner: %w", err)
	}
	s.endSessions(ctx, id)
	return nil
}

// RegenerateAccessCode replaces a partner's access code and ends the
// sessions opened with the old one.
func (s *Service) RegenerateAccessCode(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	var p *domain.Partner
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.partners.GetByID(ctx, id)
		if err != nil {
			return err
		}
		code, err := s.newAccessCode(ctx, partnerCodePrefix)
		if err != nil {
			return err
		}
		if err := s.partners.UpdateAccessCode(ctx, id, code); err != nil {
			return err
		}
		p.AccessCode = code
		return s.audit.Record(ctx, auditEntity, id, domain.AuditUpdate, map[string]any{"access_code": "regenerated"})
	})
	if err != nil {
		return nil, fmt.Errorf("partner.RegenerateAccessCode: %w", err)
	}

	s.endSessions(ctx, id)
	return p, nil
}

func (s *Service) endSessions(ctx context.Context, subjectID uuid.UUID) {
	if _, err := s.sessions.EndAllFor(ctx, subjectID); err != nil {
		s.log.WarnContext(ctx, "end partner sessions failed",
			slog.String("partner_id", subjectID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) sendWelcome(ctx context.Context, p *domain.Partner) bool {
	coupon := ""
	if p.CouponCode != nil {
		coupon = *p.CouponCode
	}
	msg, err := s.templates.PartnerWelcome(email.PartnerWelcome{
		Email:      p.Email,
		Name:       p.Name,
		Slug:       p.Slug,
		CouponCode: coupon,
		AccessCode: p.AccessCode,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "render partner welcome", slog.String("error", err.Error()))
		return false
	}
	return s.notifier.Deliver(ctx, msg) == nil
}

func couponPtr(code string) *string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return nil
	}
	return &c
}
