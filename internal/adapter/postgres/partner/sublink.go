package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

const subLinkColumns = `id, partner_id, team_member_id, code, label, clicks, sales, created_at`

const createSubLinkSQL = `
INSERT INTO sub_links (id, partner_id, team_member_id, code, label, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING ` + subLinkColumns

const listSubLinksSQL = `
SELECT ` + subLinkColumns + ` FROM sub_links WHERE partner_id = $1 ORDER BY created_at`

const getSubLinkByCodeSQL = `SELECT ` + subLinkColumns + ` FROM sub_links WHERE code = $1`

const deleteSubLinkSQL = `DELETE FROM sub_links WHERE id = $1 AND partner_id = $2`

const incrementSubLinkClicksSQL = `UPDATE sub_links SET clicks = clicks + 1 WHERE id = $1`

const incrementSubLinkSalesSQL = `UPDATE sub_links SET sales = sales + 1 WHERE code = $1`

// CreateSubLink inserts a sub-link. A taken code returns domain.ErrAlreadyExists.
func (r *Repo) CreateSubLink(ctx context.Context, l *domain.SubLink) (*domain.SubLink, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSubLinkSQL,
		l.ID, l.PartnerID, l.TeamMemberID, l.Code, l.Label,
	)
	created, err := scanSubLink(row)
	if err != nil {
		return nil, postgres.MapError(err, "sub_link", l.Code)
	}
	return created, nil
}

// ListSubLinks returns a partner's sub-links with their counters.
func (r *Repo) ListSubLinks(ctx context.Context, partnerID uuid.UUID) ([]domain.SubLink, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSubLinksSQL, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list sub links: %w", err)
	}
	defer rows.Close()

	links := []domain.SubLink{}
	for rows.Next() {
		l, err := scanSubLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub link: %w", err)
		}
		links = append(links, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sub links: %w", err)
	}
	return links, nil
}

// GetSubLinkByCode returns a sub-link by its tracking code.
func (r *Repo) GetSubLinkByCode(ctx context.Context, code string) (*domain.SubLink, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSubLinkByCodeSQL, code)
	l, err := scanSubLink(row)
	if err != nil {
		return nil, postgres.MapError(err, "sub_link", code)
	}
	return l, nil
}

// DeleteSubLink removes a sub-link owned by partnerID.
func (r *Repo) DeleteSubLink(ctx context.Context, partnerID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSubLinkSQL, id, partnerID)
	if err != nil {
		return postgres.MapError(err, "sub_link", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "sub_link", id)
	}
	return nil
}

// IncrementSubLinkClicks bumps a sub-link's click counter.
func (r *Repo) IncrementSubLinkClicks(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementSubLinkClicksSQL, id); err != nil {
		return postgres.MapError(err, "sub_link", id)
	}
	return nil
}

// IncrementSubLinkSales bumps the sale counter of the sub-link with code.
// An unknown code is not an error; the sub-link may have been deleted.
func (r *Repo) IncrementSubLinkSales(ctx context.Context, code string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, incrementSubLinkSalesSQL, code); err != nil {
		return postgres.MapError(err, "sub_link", code)
	}
	return nil
}

func scanSubLink(row pgx.Row) (*domain.SubLink, error) {
	var l domain.SubLink
	if err := row.Scan(&l.ID, &l.PartnerID, &l.TeamMemberID, &l.Code, &l.Label, &l.Clicks, &l.Sales, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
