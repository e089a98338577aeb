// Package adminuser implements back-office account persistence using PostgreSQL.
package adminuser

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides admin account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new admin user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const adminColumns = `id, email, name, password_hash, role, scopes, created_at, updated_at`

const createSQL = `
INSERT INTO admin_users (id, email, name, password_hash, role, scopes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + adminColumns

const getByIDSQL = `SELECT ` + adminColumns + ` FROM admin_users WHERE id = $1`

const getByEmailSQL = `SELECT ` + adminColumns + ` FROM admin_users WHERE email = $1`

const listSQL = `SELECT ` + adminColumns + ` FROM admin_users ORDER BY role DESC, email`

const updateSQL = `
UPDATE admin_users SET name = $2, role = $3, scopes = $4, updated_at = now()
WHERE id = $1
RETURNING ` + adminColumns

const updatePasswordSQL = `
UPDATE admin_users SET password_hash = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `DELETE FROM admin_users WHERE id = $1`

const countSuperSQL = `SELECT count(*) FROM admin_users WHERE role = 'super_admin'`

// Create inserts an admin account. A taken email returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error) {
	created, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		a.ID, a.Email, a.Name, a.PasswordHash, string(a.Role), scopeStrings(a.Scopes),
	))
	if err != nil {
		return nil, postgres.MapError(err, "admin_user", a.Email)
	}
	return created, nil
}

// GetByID returns an admin by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	a, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "admin_user", id)
	}
	return a, nil
}

// GetByEmail returns an admin by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	a, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "admin_user", email)
	}
	return a, nil
}

// List returns every admin, super admins first.
func (r *Repo) List(ctx context.Context) ([]domain.AdminUser, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	admins := []domain.AdminUser{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin user: %w", err)
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

// Update persists name, role and scopes.
func (r *Repo) Update(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error) {
	updated, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL,
		a.ID, a.Name, string(a.Role), scopeStrings(a.Scopes),
	))
	if err != nil {
		return nil, postgres.MapError(err, "admin_user", a.ID)
	}
	return updated, nil
}

// UpdatePassword replaces the stored bcrypt hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updatePasswordSQL, id, hash)
	if err != nil {
		return postgres.MapError(err, "admin_user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "admin_user", id)
	}
	return nil
}

// Delete removes an admin account.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "admin_user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "admin_user", id)
	}
	return nil
}

// CountSuperAdmins returns how many super admins exist.
func (r *Repo) CountSuperAdmins(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSuperSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count super admins: %w", err)
	}
	return n, nil
}

func scan(row pgx.Row) (*domain.AdminUser, error) {
	var (
		a      domain.AdminUser
		role   string
		scopes []string
	)
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &role, &scopes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Role = domain.AdminRole(role)
	a.Scopes = make([]domain.AdminScope, 0, len(scopes))
	for _, s := range scopes {
		a.Scopes = append(a.Scopes, domain.AdminScope(s))
	}
	return &a, nil
}

func scopeStrings(scopes []domain.AdminScope) []string {
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, string(s))
	}
	return out
}
