// Package order implements the back-office view of orders: filtered
// listing, spreadsheet export, country analytics and commission maturity.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
)

type orderRepo interface {
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	CountryStats(ctx context.Context) ([]domain.CountryStat, error)
	MatureCommissions(ctx context.Context, now time.Time) (int64, error)
}

// Service implements order administration.
type Service struct {
	log    *slog.Logger
	orders orderRepo
	now    func() time.Time
}

// NewService creates a new order service.
func NewService(logger *slog.Logger, orders orderRepo) *Service {
	return &Service{
		log:    logger.With("service", "order"),
		orders: orders,
		now:    time.Now,
	}
}
