package partner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thronelight/platform/internal/domain"
)

// Dashboard loads the portal counters for the caller. Sales and financial
// totals are only filled in when the caller's permissions allow them.
func (s *Service) Dashboard(ctx context.Context) (*domain.PartnerDashboard, error) {
	v, err := s.viewerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	dash := &domain.PartnerDashboard{
		Partner:     partnerView(v.partner, v.perms, v.isOwner()),
		TeamMember:  v.member,
		Permissions: v.perms,
		SubLinks:    []domain.SubLink{},
	}

	g, gctx := errgroup.WithContext(ctx)

	if v.perms.CanViewClicks {
		dash.Clicks = v.partner.Clicks
		g.Go(func() error {
			links, err := s.partners.ListSubLinks(gctx, v.partner.ID)
			if err != nil {
				return fmt.Errorf("list sub-links: %w", err)
			}
			if !v.perms.CanViewSales {
				for i := range links {
					links[i].Sales = 0
				}
			}
			dash.SubLinks = links
			return nil
		})
	}

	if v.perms.CanViewSales || v.perms.CanViewFinancials {
		g.Go(func() error {
			sales, fin, err := s.orders.PartnerFinancials(gctx, v.partner.ID)
			if err != nil {
				return fmt.Errorf("partner financials: %w", err)
			}
			if v.perms.CanViewSales {
				dash.Sales = &sales
			}
			if v.perms.CanViewFinancials {
				fin.ClickBountyCents = v.partner.Clicks * v.partner.ClickBountyCents
				fin.Currency = s.currency
				dash.Financials = &fin
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("partner.Dashboard: %w", err)
	}
	return dash, nil
}
