package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

const partnerFinancialsSQL = `
SELECT
	count(*) FILTER (WHERE status = 'completed'),
	coalesce(sum(amount_cents) FILTER (WHERE status = 'completed'), 0),
	coalesce(sum(commission_cents) FILTER (WHERE commission_status = 'pending'), 0),
	coalesce(sum(commission_cents) FILTER (WHERE commission_status = 'payable'), 0),
	coalesce(sum(commission_cents) FILTER (WHERE commission_status = 'voided'), 0),
	coalesce(sum(commission_cents) FILTER (WHERE commission_status = 'held'), 0)
FROM orders
WHERE partner_id = $1`

const countryStatsSQL = `
SELECT coalesce(country, 'unknown') AS country, count(*), coalesce(sum(amount_cents), 0)
FROM orders
WHERE status = 'completed'
GROUP BY 1
ORDER BY 2 DESC, 1`

// PartnerFinancials returns the completed sales count and money totals
// attributed to a partner.
func (r *Repo) PartnerFinancials(ctx context.Context, partnerID uuid.UUID) (int64, domain.PartnerFinancials, error) {
	var (
		sales int64
		f     domain.PartnerFinancials
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, partnerFinancialsSQL, partnerID).Scan(
		&sales, &f.RevenueCents,
		&f.CommissionPendingCents, &f.CommissionPayableCents, &f.CommissionVoidedCents, &f.CommissionHeldCents,
	)
	if err != nil {
		return 0, domain.PartnerFinancials{}, fmt.Errorf("partner financials %s: %w", partnerID, err)
	}
	return sales, f, nil
}

// CountryStats aggregates completed orders by buyer country.
func (r *Repo) CountryStats(ctx context.Context) ([]domain.CountryStat, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, countryStatsSQL)
	if err != nil {
		return nil, fmt.Errorf("country stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.CountryStat{}
	for rows.Next() {
		var s domain.CountryStat
		if err := rows.Scan(&s.Country, &s.Orders, &s.RevenueCents); err != nil {
			return nil, fmt.Errorf("scan country stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
