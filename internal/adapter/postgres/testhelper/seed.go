package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thronelight/platform/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPartner creates an active partner with a unique slug, coupon and
// access code.
func SeedPartner(t *testing.T, pool *pgxpool.Pool) domain.Partner {
	t.Helper()

	suffix := uniqueSuffix()
	coupon := "CROWN" + strings.ToUpper(suffix)
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Partner{
		ID:                uuid.New(),
		Name:              "Partner " + suffix,
		Email:             "partner-" + suffix + "@example.com",
		Slug:              "partner-" + suffix,
		CouponCode:        &coupon,
		AccessCode:        "TL-" + strings.ToUpper(suffix[:4]) + "-" + strings.ToUpper(suffix[4:]),
		CommissionPercent: 20,
		DiscountPercent:   10,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO partners (id, name, email, slug, coupon_code, access_code, commission_percent,
			click_bounty_cents, discount_percent, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Name, p.Email, p.Slug, p.CouponCode, p.AccessCode, p.CommissionPercent,
		p.ClickBountyCents, p.DiscountPercent, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPartner: %v", err)
	}
	return p
}

// SeedTeamMember creates an active team member under partnerID.
func SeedTeamMember(t *testing.T, pool *pgxpool.Pool, partnerID uuid.UUID, role domain.TeamRole) domain.TeamMember {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.TeamMember{
		ID:         uuid.New(),
		PartnerID:  partnerID,
		Name:       "Member " + suffix,
		Email:      "member-" + suffix + "@example.com",
		Role:       role,
		AccessCode: "TM-" + strings.ToUpper(suffix[:4]) + "-" + strings.ToUpper(suffix[4:]),
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO team_members (id, partner_id, name, email, role, access_code, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.PartnerID, m.Name, m.Email, string(m.Role), m.AccessCode, m.Active, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTeamMember: %v", err)
	}
	return m
}

// SeedOrder creates a completed order attributed to partnerID (may be nil)
// with a pending commission.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, partnerID *uuid.UUID, amountCents int64) domain.Order {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	country := "US"
	o := domain.Order{
		ID:               uuid.New(),
		StripeSessionID:  "cs_test_" + suffix,
		Email:            "reader-" + suffix + "@example.com",
		Country:          &country,
		AmountCents:      amountCents,
		Currency:         "usd",
		Status:           domain.OrderStatusCompleted,
		PartnerID:        partnerID,
		CommissionStatus: domain.CommissionNone,
		BookIDs:          []string{"crown-book"},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if partnerID != nil {
		matures := domain.MaturityDate(now, 30)
		o.CommissionCents = domain.CommissionFor(amountCents, 20)
		o.CommissionStatus = domain.CommissionPending
		o.MaturesAt = &matures
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO orders (id, stripe_session_id, email, country, amount_cents, currency, status,
			partner_id, commission_cents, commission_status, matures_at, book_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`,
		o.ID, o.StripeSessionID, o.Email, o.Country, o.AmountCents, o.Currency, string(o.Status),
		o.PartnerID, o.CommissionCents, string(o.CommissionStatus), o.MaturesAt, o.BookIDs, o.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrder: %v", err)
	}
	return o
}

// SeedAdmin creates an admin account with the given role and scopes.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, role domain.AdminRole, scopes ...domain.AdminScope) domain.AdminUser {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.AdminUser{
		ID:           uuid.New(),
		Email:        "admin-" + suffix + "@thronelight.com",
		Name:         "Admin " + suffix,
		PasswordHash: "$2a$10$seededhashseededhashseededhashseededhashseededhash12",
		Role:         role,
		Scopes:       scopes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	names := make([]string, 0, len(scopes))
	for _, s := range scopes {
		names = append(names, string(s))
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO admin_users (id, email, name, password_hash, role, scopes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Email, a.Name, a.PasswordHash, string(a.Role), names, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}
	return a
}
