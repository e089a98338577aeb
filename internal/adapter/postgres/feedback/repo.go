// Package feedback implements reader feedback persistence using PostgreSQL.
package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new feedback repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "type", "message", "email", "page", "status", "admin_notes", "created_at", "updated_at"}

const returning = `RETURNING id, type, message, email, page, status, admin_notes, created_at, updated_at`

const createSQL = `
INSERT INTO feedback (id, type, message, email, page, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
` + returning

const getByIDSQL = `
SELECT id, type, message, email, page, status, admin_notes, created_at, updated_at
FROM feedback WHERE id = $1`

const updateSQL = `
UPDATE feedback SET status = $2, admin_notes = $3, updated_at = now()
WHERE id = $1
` + returning

const deleteSQL = `DELETE FROM feedback WHERE id = $1`

// Create inserts a feedback item.
func (r *Repo) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		fb.ID, string(fb.Type), fb.Message, fb.Email, fb.Page, string(fb.Status),
	)
	created, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", fb.ID)
	}
	return created, nil
}

// GetByID returns a feedback item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	fb, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", id)
	}
	return fb, nil
}

// List returns feedback filtered by status, type and a search over message,
// email and page.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Feedback, int, error) {
	where := postgres.FilterWhere(f, "message", "email", "page")
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("feedback").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count feedback: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count feedback: %w", err)
	}

	sql, args, err := postgres.Page(
		postgres.Builder().Select(columns...).From("feedback").Where(where).OrderBy("created_at DESC"),
		f.Limit, f.Offset,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list feedback: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	items := []domain.Feedback{}
	for rows.Next() {
		fb, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, *fb)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list feedback: %w", err)
	}
	return items, total, nil
}

// Update persists triage status and admin notes.
func (r *Repo) Update(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, fb.ID, string(fb.Status), fb.AdminNotes)
	updated, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", fb.ID)
	}
	return updated, nil
}

// Delete removes a feedback item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "feedback", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "feedback", id)
	}
	return nil
}

func scan(row pgx.Row) (*domain.Feedback, error) {
	var (
		fb          domain.Feedback
		typ, status string
	)
	if err := row.Scan(&fb.ID, &typ, &fb.Message, &fb.Email, &fb.Page, &status, &fb.AdminNotes, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
		return nil, err
	}
	fb.Type = domain.FeedbackType(typ)
	fb.Status = domain.FeedbackStatus(status)
	return &fb, nil
}
