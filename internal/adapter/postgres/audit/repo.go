// Package audit implements the admin audit log using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const auditColumns = `id, admin_id, entity_type, entity_id, action, changes, created_at`

const createSQL = `
INSERT INTO audit_log (id, admin_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getByEntitySQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

const getByAdminSQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE admin_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	var changes []byte
	if record.Changes != nil {
		b, err := json.Marshal(record.Changes)
		if err != nil {
			return fmt.Errorf("audit_record marshal changes: %w", err)
		}
		changes = b
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		record.ID, record.AdminID, record.EntityType, record.EntityID,
		string(record.Action), changes, record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history of one entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getByEntitySQL, entityType, entityID, domain.PageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return collect(rows)
}

// GetByAdmin returns the records written by one admin, newest first.
func (r *Repo) GetByAdmin(ctx context.Context, adminID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getByAdminSQL, adminID, domain.PageSize(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("get audit_records by admin: %w", err)
	}
	return collect(rows)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func collect(rows pgx.Rows) ([]domain.AuditRecord, error) {
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		var (
			rec     domain.AuditRecord
			action  string
			changes []byte
		)
		if err := rows.Scan(&rec.ID, &rec.AdminID, &rec.EntityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		rec.Action = domain.AuditAction(action)

		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &rec.Changes); err != nil {
				return nil, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read audit_records: %w", err)
	}
	return records, nil
}
