// Package submission implements manuscript submission persistence using PostgreSQL.
package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "author_name", "email", "title", "genre", "word_count", "synopsis",
	"sample_url", "status", "editor_notes", "created_at", "updated_at",
}

const submissionColumns = `id, author_name, email, title, genre, word_count, synopsis,
	sample_url, status, editor_notes, created_at, updated_at`

const createSQL = `
INSERT INTO submissions (id, author_name, email, title, genre, word_count, synopsis, sample_url, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
RETURNING ` + submissionColumns

const getByIDSQL = `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

const updateSQL = `
UPDATE submissions SET status = $2, editor_notes = $3, updated_at = now()
WHERE id = $1
RETURNING ` + submissionColumns

const deleteSQL = `DELETE FROM submissions WHERE id = $1`

// Create inserts a submission.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		s.ID, s.AuthorName, s.Email, s.Title, s.Genre, s.WordCount, s.Synopsis, s.SampleURL, string(s.Status),
	)
	created, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "submission", s.ID)
	}
	return created, nil
}

// GetByID returns a submission by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	s, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	return s, nil
}

// List returns submissions filtered by status and a search over title,
// author and genre.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int, error) {
	where := postgres.FilterWhere(domain.ListFilter{Status: f.Status, Search: f.Search}, "title", "author_name", "genre")
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("submissions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count submissions: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	sql, args, err := postgres.Page(
		postgres.Builder().Select(columns...).From("submissions").Where(where).OrderBy("created_at DESC"),
		f.Limit, f.Offset,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list submissions: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Submission{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}
	return subs, total, nil
}

// Update persists editorial status and notes.
func (r *Repo) Update(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	updated, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, s.ID, string(s.Status), s.EditorNotes))
	if err != nil {
		return nil, postgres.MapError(err, "submission", s.ID)
	}
	return updated, nil
}

// Delete removes a submission.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "submission", id)
	}
	return nil
}

func scan(row pgx.Row) (*domain.Submission, error) {
	var (
		s      domain.Submission
		status string
	)
	err := row.Scan(&s.ID, &s.AuthorName, &s.Email, &s.Title, &s.Genre, &s.WordCount, &s.Synopsis,
		&s.SampleURL, &status, &s.EditorNotes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Status = domain.SubmissionStatus(status)
	return &s, nil
}
