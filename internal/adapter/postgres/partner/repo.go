// Package partner implements partner, team member, sub-link and click
// persistence using PostgreSQL.
package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides partner persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new partner repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const partnerColumns = `id, name, email, slug, coupon_code, access_code, commission_percent,
	click_bounty_cents, discount_percent, active, clicks, created_at, updated_at`

const createPartnerSQL = `
INSERT INTO partners (id, name, email, slug, coupon_code, access_code, commission_percent,
	click_bounty_cents, discount_percent, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
RETURNING ` + partnerColumns

const getPartnerByIDSQL = `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

const getPartnerBySlugSQL = `SELECT ` + partnerColumns + ` FROM partners WHERE slug = $1`

const getPartnerByCouponSQL = `SELECT ` + partnerColumns + ` FROM partners WHERE upper(coupon_code) = upper($1)`

const getPartnerByAccessCodeSQL = `SELECT ` + partnerColumns + ` FROM partners WHERE access_code = $1`

const listPartnersSQL = `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC`

const updatePartnerSQL = `
UPDATE partners
SET name = $2, email = $3, slug = $4, coupon_code = $5, commission_percent = $6,
	click_bounty_cents = $7, discount_percent = $8, active = $9, updated_at = now()
WHERE id = $1
RETURNING ` + partnerColumns

const updateAccessCodeSQL = `
UPDATE partners SET access_code = $2, updated_at = now() WHERE id = $1`

const deletePartnerSQL = `DELETE FROM partners WHERE id = $1`

const incrementPartnerClicksSQL = `UPDATE partners SET clicks = clicks + 1 WHERE id = $1`

const accessCodeExistsSQL = `
SELECT EXISTS (SELECT 1 FROM partners WHERE access_code = $1)
    OR EXISTS (SELECT 1 FROM team_members WHERE access_code = $1)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a partner by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPartnerByIDSQL, id)
	p, err := scanPartner(row)
	if err != nil {
		return nil, postgres.MapError(err, "partner", id)
	}
	return p, nil
}

// GetBySlug returns a partner by its public link slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Partner, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPartnerBySlugSQL, slug)
	p, err := scanPartner(row)
	if err != nil {
		return nil, postgres.MapError(err, "partner", slug)
	}
	return p, nil
}

// GetByCouponCode returns a partner by coupon code, case-insensitively.
func (r *Repo) GetByCouponCode(ctx context.Context, code string) (*domain.Partner, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPartnerByCouponSQL, code)
	p, err := scanPartner(row)
	if err != nil {
		return nil, postgres.MapError(err, "partner coupon", code)
	}
	return p, nil
}

// GetByAccessCode returns a partner by login access code.
func (r *Repo) GetByAccessCode(ctx context.Context, code string) (*domain.Partner, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPartnerByAccessCodeSQL, code)
	p, err := scanPartner(row)
	if err != nil {
		return nil, postgres.MapError(err, "partner", "access code")
	}
	return p, nil
}

// List returns all partners, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Partner, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listPartnersSQL)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		partners = append(partners, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return partners, nil
}

// AccessCodeExists reports whether code is already used by any partner or
// team member.
func (r *Repo) AccessCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, accessCodeExistsSQL, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("check access code: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a partner. Duplicate email, slug, coupon or access code
// returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createPartnerSQL,
		p.ID, p.Name, p.Email, p.Slug, p.CouponCode, p.AccessCode,
		p.CommissionPercent, p.ClickBountyCents, p.DiscountPercent, p.Active,
	)
	created, err := scanPartner(row)
	if err != nil {
		return nil, postgres.MapError(err, "partner", p.ID)
	}
	return created, nil
}

// Update persists the editable partner fields.
func (r *Repo) Update(ctx context.Context, p *domain.Partner) (*domain.Partner, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updatePartnerSQL,
		p.ID, p.Name, p.Email, p.Slug, p.CouponCode,
		p.CommissionPercent, p.ClickBountyCents, p.DiscountPercent, p.Active,
	)
	updated, err := scanPartner(row)
	if err != nil {
		return nil, postgres.MapError(err, "partner", p.ID)
	}
	return updated, nil
}

// UpdateAccessCode replaces the partner's login code.
func (r *Repo) UpdateAccessCode(ctx context.Context, id uuid.UUID, code string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updateAccessCodeSQL, id, code)
	if err != nil {
		return postgres.MapError(err, "partner", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "partner", id)
	}
	return nil
}

// Delete removes a partner with its team, sub-links and clicks.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deletePartnerSQL, id)
	if err != nil {
		return postgres.MapError(err, "partner", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "partner", id)
	}
	return nil
}

// IncrementClicks bumps the partner's click counter.
func (r *Repo) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementPartnerClicksSQL, id); err != nil {
		return postgres.MapError(err, "partner", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Slug, &p.CouponCode, &p.AccessCode,
		&p.CommissionPercent, &p.ClickBountyCents, &p.DiscountPercent,
		&p.Active, &p.Clicks, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
