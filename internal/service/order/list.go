package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

// ListResult is one page of orders.
type ListResult struct {
	Orders []domain.Order
	Total  int
}

// ListOrders returns a filtered page of orders, newest first.
func (s *Service) ListOrders(ctx context.Context, input ListInput) (*ListResult, error) {
	f, err := input.Filter()
	if err != nil {
		return nil, err
	}
	orders, total, err := s.orders.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("order.ListOrders: %w", err)
	}
	return &ListResult{Orders: orders, Total: total}, nil
}

// GetOrder returns one order.
func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order.GetOrder: %w", err)
	}
	return o, nil
}

// MaturingCommissions lists pending commissions, the orders the next
// maturity sweep will consider.
func (s *Service) MaturingCommissions(ctx context.Context, limit, offset int) (*ListResult, error) {
	return s.ListOrders(ctx, ListInput{
		Status:           string(domain.OrderStatusCompleted),
		CommissionStatus: string(domain.CommissionPending),
		Limit:            limit,
		Offset:           offset,
	})
}

// MatureCommissions moves pending commissions whose maturity date has
// passed to payable. It is run by the operator CLI.
func (s *Service) MatureCommissions(ctx context.Context) (int64, error) {
	now := s.now().UTC()
	n, err := s.orders.MatureCommissions(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("order.MatureCommissions: %w", err)
	}
	s.log.InfoContext(ctx, "commissions matured", slog.Int64("count", n), slog.Time("as_of", now))
	return n, nil
}

// CountryStats aggregates completed orders by buyer country for the
// analytics map.
func (s *Service) CountryStats(ctx context.Context) ([]domain.CountryStat, error) {
	stats, err := s.orders.CountryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("order.CountryStats: %w", err)
	}
	return stats, nil
}
