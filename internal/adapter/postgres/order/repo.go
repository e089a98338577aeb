// Package order implements order, library access and webhook event
// persistence using PostgreSQL.
package order

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/thronelight/platform/internal/adapter/postgres"
	"github.com/thronelight/platform/internal/domain"
)

// SessionConstraint is the unique constraint that keeps one order per
// checkout session.
const SessionConstraint = "orders_stripe_session_id_key"

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new order repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const orderColumns = `id, stripe_session_id, payment_intent_id, email, country, amount_cents, currency,
	status, partner_id, sub_link_code, commission_cents, commission_status, matures_at, book_ids,
	created_at, updated_at`

var orderColumnList = []string{
	"id", "stripe_session_id", "payment_intent_id", "email", "country", "amount_cents", "currency",
	"status", "partner_id", "sub_link_code", "commission_cents", "commission_status", "matures_at", "book_ids",
	"created_at", "updated_at",
}

const createOrderSQL = `
INSERT INTO orders (id, stripe_session_id, payment_intent_id, email, country, amount_cents, currency,
	status, partner_id, sub_link_code, commission_cents, commission_status, matures_at, book_ids,
	created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
RETURNING ` + orderColumns

const getBySessionIDSQL = `SELECT ` + orderColumns + ` FROM orders WHERE stripe_session_id = $1`

const getByPaymentIntentSQL = `SELECT ` + orderColumns + ` FROM orders WHERE payment_intent_id = $1`

const getOrderByIDSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

const existsBySessionIDSQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE stripe_session_id = $1)`

const updateStatusSQL = `
UPDATE orders SET status = $2, commission_status = $3, updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

const matureCommissionsSQL = `
UPDATE orders SET commission_status = 'payable', updated_at = now()
WHERE commission_status = 'pending' AND status = 'completed' AND matures_at <= $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ExistsBySessionID reports whether an order was already recorded for the
// checkout session.
func (r *Repo) ExistsBySessionID(ctx context.Context, sessionID string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsBySessionIDSQL, sessionID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "order", sessionID)
	}
	return exists, nil
}

// GetByID returns an order by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getOrderByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	return o, nil
}

// GetBySessionID returns the order created for a checkout session.
func (r *Repo) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	o, err := scanOrder(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getBySessionIDSQL, sessionID))
	if err != nil {
		return nil, postgres.MapError(err, "order", sessionID)
	}
	return o, nil
}

// GetByPaymentIntent returns the order paid by a payment intent.
func (r *Repo) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Order, error) {
	o, err := scanOrder(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByPaymentIntentSQL, paymentIntentID))
	if err != nil {
		return nil, postgres.MapError(err, "order", paymentIntentID)
	}
	return o, nil
}

// List returns a filtered page of orders, newest first, and the total count.
func (r *Repo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error) {
	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}
	if f.CommissionStatus != nil {
		where = append(where, sq.Eq{"commission_status": string(*f.CommissionStatus)})
	}
	if f.PartnerID != nil {
		where = append(where, sq.Eq{"partner_id": *f.PartnerID})
	}
	if f.Email != nil {
		where = append(where, sq.ILike{"email": "%" + *f.Email + "%"})
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("orders").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count orders: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	listSQL, args, err := postgres.Builder().
		Select(orderColumnList...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(domain.PageSize(f.Limit))).
		Offset(uint64(max(f.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list orders: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an order. A second order for the same checkout session
// violates SessionConstraint and returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	bookIDs := o.BookIDs
	if bookIDs == nil {
		bookIDs = []string{}
	}
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createOrderSQL,
		o.ID, o.StripeSessionID, o.PaymentIntentID, o.Email, o.Country, o.AmountCents, o.Currency,
		string(o.Status), o.PartnerID, o.SubLinkCode, o.CommissionCents, string(o.CommissionStatus),
		o.MaturesAt, bookIDs, createdAt,
	)
	created, err := scanOrder(row)
	if err != nil {
		return nil, postgres.MapError(err, "order", o.StripeSessionID)
	}
	return created, nil
}

// UpdateStatus sets the payment and commission status of an order.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, commission domain.CommissionStatus) (*domain.Order, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateStatusSQL, id, string(status), string(commission))
	o, err := scanOrder(row)
	if err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	return o, nil
}

// MatureCommissions moves pending commissions of completed orders whose
// maturity date has passed to payable. Returns the number of orders moved.
func (r *Repo) MatureCommissions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, matureCommissionsSQL, now)
	if err != nil {
		return 0, fmt.Errorf("mature commissions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o                  domain.Order
		status, commission string
	)
	err := row.Scan(
		&o.ID, &o.StripeSessionID, &o.PaymentIntentID, &o.Email, &o.Country, &o.AmountCents, &o.Currency,
		&status, &o.PartnerID, &o.SubLinkCode, &o.CommissionCents, &commission, &o.MaturesAt, &o.BookIDs,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	o.CommissionStatus = domain.CommissionStatus(commission)
	return &o, nil
}
