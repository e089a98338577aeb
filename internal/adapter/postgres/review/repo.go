// Package review implements review persistence using PostgreSQL.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "name", "email", "book_id", "rating", "title", "body", "status", "featured", "created_at", "updated_at"}

const returning = `RETURNING id, name, email, book_id, rating, title, body, status, featured, created_at, updated_at`

const createSQL = `
INSERT INTO reviews (id, name, email, book_id, rating, title, body, status, featured, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, now(), now())
` + returning

const updateSQL = `
UPDATE reviews SET status = $2, featured = $3, updated_at = now()
WHERE id = $1
` + returning

const getByIDSQL = `
SELECT id, name, email, book_id, rating, title, body, status, featured, created_at, updated_at
FROM reviews WHERE id = $1`

const deleteSQL = `DELETE FROM reviews WHERE id = $1`

// Create inserts a review.
func (r *Repo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		rv.ID, rv.Name, rv.Email, rv.BookID, rv.Rating, rv.Title, rv.Body, string(rv.Status),
	)
	created, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}
	return created, nil
}

// GetByID returns a review by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	rv, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	return rv, nil
}

// List returns reviews matching the filter, featured first, then newest.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Review, int, error) {
	where := postgres.FilterWhere(domain.ListFilter{Status: f.Status, Search: f.Search}, "name", "body", "title")
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("reviews").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count reviews: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	sql, args, err := postgres.Page(
		postgres.Builder().Select(columns...).From("reviews").Where(where).OrderBy("featured DESC", "created_at DESC"),
		f.Limit, f.Offset,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reviews: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, total, nil
}

// Update persists moderation status and the featured flag.
func (r *Repo) Update(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, rv.ID, string(rv.Status), rv.Featured)
	updated, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}
	return updated, nil
}

// Delete removes a review.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "review", id)
	}
	return nil
}

func scan(row pgx.Row) (*domain.Review, error) {
	var (
		rv     domain.Review
		status string
	)
	if err := row.Scan(&rv.ID, &rv.Name, &rv.Email, &rv.BookID, &rv.Rating, &rv.Title, &rv.Body, &status, &rv.Featured, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	rv.Status = domain.ReviewStatus(status)
	return &rv, nil
}
