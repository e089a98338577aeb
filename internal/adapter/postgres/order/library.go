package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

const accessColumns = `id, email, book_id, order_id, access_code, granted_at, revoked_at`

const grantAccessSQL = `
INSERT INTO library_access (id, email, book_id, order_id, access_code, granted_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING ` + accessColumns

const listAccessByEmailSQL = `
SELECT ` + accessColumns + ` FROM library_access WHERE email = $1 ORDER BY granted_at DESC`

const listActiveByCodeSQL = `
SELECT ` + accessColumns + ` FROM library_access
WHERE email = $1 AND access_code = $2 AND revoked_at IS NULL`

const hasActiveAccessSQL = `
SELECT EXISTS (SELECT 1 FROM library_access WHERE email = $1 AND book_id = $2 AND revoked_at IS NULL)`

const revokeAccessSQL = `
UPDATE library_access SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`

const revokeAccessByOrderSQL = `
UPDATE library_access SET revoked_at = now() WHERE order_id = $1 AND revoked_at IS NULL`

// GrantAccess records a library grant.
func (r *Repo) GrantAccess(ctx context.Context, a *domain.LibraryAccess) (*domain.LibraryAccess, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, grantAccessSQL,
		a.ID, a.Email, a.BookID, a.OrderID, a.AccessCode,
	)
	created, err := scanAccess(row)
	if err != nil {
		return nil, postgres.MapError(err, "library_access", a.ID)
	}
	return created, nil
}

// ListAccessByEmail returns every grant for an email, revoked ones included.
func (r *Repo) ListAccessByEmail(ctx context.Context, email string) ([]domain.LibraryAccess, error) {
	return r.queryAccess(ctx, listAccessByEmailSQL, email)
}

// ListActiveAccessByCode returns active grants matching an email and code.
func (r *Repo) ListActiveAccessByCode(ctx context.Context, email, code string) ([]domain.LibraryAccess, error) {
	return r.queryAccess(ctx, listActiveByCodeSQL, email, code)
}

// HasActiveAccess reports whether email holds an unrevoked grant for bookID.
func (r *Repo) HasActiveAccess(ctx context.Context, email, bookID string) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, hasActiveAccessSQL, email, bookID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check library access: %w", err)
	}
	return ok, nil
}

// RevokeAccess revokes one grant. Revoking twice returns domain.ErrNotFound.
func (r *Repo) RevokeAccess(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeAccessSQL, id)
	if err != nil {
		return postgres.MapError(err, "library_access", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "library_access", id)
	}
	return nil
}

// RevokeAccessByOrder revokes every active grant bought by an order.
func (r *Repo) RevokeAccessByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeAccessByOrderSQL, orderID)
	if err != nil {
		return 0, postgres.MapError(err, "library_access", orderID)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) queryAccess(ctx context.Context, sql string, args ...any) ([]domain.LibraryAccess, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query library access: %w", err)
	}
	defer rows.Close()

	grants := []domain.LibraryAccess{}
	for rows.Next() {
		a, err := scanAccess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan library access: %w", err)
		}
		grants = append(grants, *a)
	}
	return grants, rows.Err()
}

func scanAccess(row pgx.Row) (*domain.LibraryAccess, error) {
	var a domain.LibraryAccess
	if err := row.Scan(&a.ID, &a.Email, &a.BookID, &a.OrderID, &a.AccessCode, &a.GrantedAt, &a.RevokedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
