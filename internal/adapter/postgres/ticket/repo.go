// Package ticket implements support ticket persistence using PostgreSQL.
package ticket

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// Repo provides support ticket persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ticket repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var columns = []string{"id", "name", "email", "subject", "message", "status", "priority", "order_id", "created_at", "updated_at"}

const ticketColumns = `id, name, email, subject, message, status, priority, order_id, created_at, updated_at`

const createSQL = `
INSERT INTO support_tickets (id, name, email, subject, message, status, priority, order_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
RETURNING ` + ticketColumns

const getByIDSQL = `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1`

const updateSQL = `
UPDATE support_tickets SET status = $2, priority = $3, updated_at = now()
WHERE id = $1
RETURNING ` + ticketColumns

const deleteSQL = `DELETE FROM support_tickets WHERE id = $1`

const addReplySQL = `
INSERT INTO ticket_replies (id, ticket_id, admin_id, body, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING id, ticket_id, admin_id, body, created_at`

const listRepliesSQL = `
SELECT id, ticket_id, admin_id, body, created_at
FROM ticket_replies WHERE ticket_id = $1 ORDER BY created_at`

// ---------------------------------------------------------------------------
// Tickets
// ---------------------------------------------------------------------------

// Create inserts a ticket.
func (r *Repo) Create(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		t.ID, t.Name, t.Email, t.Subject, t.Message, string(t.Status), string(t.Priority), t.OrderID,
	)
	created, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "support_ticket", t.ID)
	}
	return created, nil
}

// GetByID returns a ticket with its replies.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scan(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "support_ticket", id)
	}

	rows, err := q.Query(ctx, listRepliesSQL, id)
	if err != nil {
		return nil, fmt.Errorf("list ticket replies: %w", err)
	}
	defer rows.Close()

	t.Replies = []domain.TicketReply{}
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket reply: %w", err)
		}
		t.Replies = append(t.Replies, *reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ticket replies: %w", err)
	}

	return t, nil
}

// List returns tickets filtered by status and a search over subject, email
// and name, most urgent first.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.SupportTicket, int, error) {
	where := postgres.FilterWhere(domain.ListFilter{Status: f.Status, Search: f.Search}, "subject", "email", "name")
	if f.Priority != nil && *f.Priority != "" {
		where = append(where, sq.Eq{"priority": *f.Priority})
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("support_tickets").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count tickets: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tickets: %w", err)
	}

	sql, args, err := postgres.Page(
		postgres.Builder().Select(columns...).From("support_tickets").Where(where).
			OrderBy(priorityOrder, "created_at DESC"),
		f.Limit, f.Offset,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list tickets: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []domain.SupportTicket{}
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, total, nil
}

// Update persists status and priority.
func (r *Repo) Update(ctx context.Context, t *domain.SupportTicket) (*domain.SupportTicket, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL, t.ID, string(t.Status), string(t.Priority))
	updated, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "support_ticket", t.ID)
	}
	return updated, nil
}

// Delete removes a ticket and its replies.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "support_ticket", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "support_ticket", id)
	}
	return nil
}

// AddReply stores an admin reply on a ticket.
func (r *Repo) AddReply(ctx context.Context, reply *domain.TicketReply) (*domain.TicketReply, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, addReplySQL, reply.ID, reply.TicketID, reply.AdminID, reply.Body)
	created, err := scanReply(row)
	if err != nil {
		return nil, postgres.MapError(err, "ticket_reply", reply.TicketID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const priorityOrder = `CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'normal' THEN 2 ELSE 3 END`

func scan(row pgx.Row) (*domain.SupportTicket, error) {
	var (
		t                domain.SupportTicket
		status, priority string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Subject, &t.Message, &status, &priority, &t.OrderID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Status = domain.TicketStatus(status)
	t.Priority = domain.TicketPriority(priority)
	return &t, nil
}

func scanReply(row pgx.Row) (*domain.TicketReply, error) {
	var reply domain.TicketReply
	if err := row.Scan(&reply.ID, &reply.TicketID, &reply.AdminID, &reply.Body, &reply.CreatedAt); err != nil {
		return nil, err
	}
	return &reply, nil
}
