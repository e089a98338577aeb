// Package reader implements reader identity and reading position persistence
// using PostgreSQL.
package reader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides reader persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reader repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const ensureReaderSQL = `
INSERT INTO readers (id, email, created_at) VALUES ($1, $2, now())
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id, email, created_at`

const getReaderSQL = `SELECT id, email, created_at FROM readers WHERE id = $1`

const positionColumns = `p.reader_id, r.email, p.book_id, p.cfi, p.percentage, p.chapter, p.updated_at`

const getPositionSQL = `
SELECT ` + positionColumns + `
FROM reading_positions p JOIN readers r ON r.id = p.reader_id
WHERE p.reader_id = $1 AND p.book_id = $2`

const upsertPositionSQL = `
INSERT INTO reading_positions (reader_id, book_id, cfi, percentage, chapter, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (reader_id, book_id) DO UPDATE
SET cfi = EXCLUDED.cfi, percentage = EXCLUDED.percentage, chapter = EXCLUDED.chapter, updated_at = EXCLUDED.updated_at`

const activeSinceSQL = `
SELECT ` + positionColumns + `
FROM reading_positions p JOIN readers r ON r.id = p.reader_id
WHERE p.updated_at >= $1
ORDER BY p.updated_at DESC`

// ---------------------------------------------------------------------------
// Readers
// ---------------------------------------------------------------------------

// Ensure returns the reader for email, creating it on first login.
func (r *Repo) Ensure(ctx context.Context, email string) (*domain.Reader, error) {
	var rd domain.Reader
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, ensureReaderSQL, uuid.New(), email).
		Scan(&rd.ID, &rd.Email, &rd.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "reader", email)
	}
	return &rd, nil
}

// GetByID returns a reader by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reader, error) {
	var rd domain.Reader
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getReaderSQL, id).Scan(&rd.ID, &rd.Email, &rd.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "reader", id)
	}
	return &rd, nil
}

// ---------------------------------------------------------------------------
// Reading positions
// ---------------------------------------------------------------------------

// GetPosition returns the reader's saved position in a book.
func (r *Repo) GetPosition(ctx context.Context, readerID uuid.UUID, bookID string) (*domain.ReadingPosition, error) {
	p, err := scanPosition(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPositionSQL, readerID, bookID))
	if err != nil {
		return nil, postgres.MapError(err, "reading_position", bookID)
	}
	return p, nil
}

// SavePosition upserts the reader's position in a book.
func (r *Repo) SavePosition(ctx context.Context, p domain.ReadingPosition) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertPositionSQL,
		p.ReaderID, p.BookID, p.CFI, p.Percentage, p.Chapter, p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "reading_position", p.BookID)
	}
	return nil
}

// ActiveSince lists positions updated at or after since, most recent first.
func (r *Repo) ActiveSince(ctx context.Context, since time.Time) ([]domain.ReadingPosition, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, activeSinceSQL, since)
	if err != nil {
		return nil, fmt.Errorf("active readers: %w", err)
	}
	defer rows.Close()

	positions := []domain.ReadingPosition{}
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading position: %w", err)
		}
		positions = append(positions, *p)
	}
	return positions, rows.Err()
}

func scanPosition(row pgx.Row) (*domain.ReadingPosition, error) {
	var p domain.ReadingPosition
	if err := row.Scan(&p.ReaderID, &p.Email, &p.BookID, &p.CFI, &p.Percentage, &p.Chapter, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
