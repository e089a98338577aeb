// Package subscriber implements newsletter subscriber persistence using PostgreSQL.
package subscriber

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides subscriber persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subscriber repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "email", "name", "source", "tags", "status", "created_at", "updated_at"}

const subscriberColumns = `id, email, name, source, tags, status, created_at, updated_at`

// upsertSQL reactivates an existing row instead of failing on the email key.
// xmax = 0 only for freshly inserted tuples.
const upsertSQL = `
INSERT INTO subscribers (id, email, name, source, tags, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 'active', now(), now())
ON CONFLICT (email) DO UPDATE
SET status = 'active',
    name = coalesce(EXCLUDED.name, subscribers.name),
    tags = (SELECT array_agg(DISTINCT t) FROM unnest(subscribers.tags || EXCLUDED.tags) AS t),
    updated_at = now()
RETURNING ` + subscriberColumns + `, (xmax = 0) AS inserted`

const getByIDSQL = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`

const getByEmailSQL = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE email = $1`

const updateSQL = `
UPDATE subscribers SET status = $2, tags = $3, updated_at = now()
WHERE id = $1
RETURNING ` + subscriberColumns

const unsubscribeSQL = `
UPDATE subscribers SET status = 'unsubscribed', updated_at = now()
WHERE email = $1`

const deleteSQL = `DELETE FROM subscribers WHERE id = $1`

// Upsert subscribes an email. A known email is reactivated and its tags are
// merged. The boolean reports whether a new row was created.
func (r *Repo) Upsert(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, bool, error) {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	var (
		out      domain.Subscriber
		status   string
		inserted bool
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL, s.ID, s.Email, s.Name, s.Source, tags).Scan(
		&out.ID, &out.Email, &out.Name, &out.Source, &out.Tags, &status, &out.CreatedAt, &out.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, false, postgres.MapError(err, "subscriber", s.Email)
	}
	out.Status = domain.SubscriberStatus(status)
	return &out, inserted, nil
}

// GetByID returns a subscriber by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	s, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "subscriber", id)
	}
	return s, nil
}

// GetByEmail returns a subscriber by normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	s, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "subscriber", email)
	}
	return s, nil
}

// List returns subscribers filtered by status, a tag (Type) and a search
// over email and name.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Subscriber, int, error) {
	where := postgres.FilterWhere(domain.ListFilter{Status: f.Status, Search: f.Search}, "email", "name")
	if f.Type != nil && *f.Type != "" {
		where = append(where, sq.Expr("? = ANY(tags)", *f.Type))
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("subscribers").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count subscribers: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count subscribers: %w", err)
	}

	sql, args, err := postgres.Page(
		postgres.Builder().Select(columns...).From("subscribers").Where(where).OrderBy("created_at DESC"),
		f.Limit, f.Offset,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list subscribers: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	subs := []domain.Subscriber{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, total, nil
}

// Update persists status and tags.
func (r *Repo) Update(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	updated, err := scan(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, s.ID, string(s.Status), tags))
	if err != nil {
		return nil, postgres.MapError(err, "subscriber", s.ID)
	}
	return updated, nil
}

// Unsubscribe marks an email unsubscribed. Unknown emails are not an error
// so the endpoint does not reveal membership.
func (r *Repo) Unsubscribe(ctx context.Context, email string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, unsubscribeSQL, email); err != nil {
		return postgres.MapError(err, "subscriber", email)
	}
	return nil
}

// Delete removes a subscriber.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "subscriber", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "subscriber", id)
	}
	return nil
}

func scan(row pgx.Row) (*domain.Subscriber, error) {
	var (
		s      domain.Subscriber
		status string
	)
	if err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Source, &s.Tags, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = domain.SubscriberStatus(status)
	return &s, nil
}
