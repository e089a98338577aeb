package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/order"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type orderService interface {
	ListOrders(ctx context.Context, input order.ListInput) (*order.ListResult, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	MaturingCommissions(ctx context.Context, limit, offset int) (*order.ListResult, error)
	MatureCommissions(ctx context.Context) (int64, error)
	CountryStats(ctx context.Context) ([]domain.CountryStat, error)
	ExportOrders(ctx context.Context, input order.ListInput) ([]byte, error)
}

// OrderHandler serves the admin order views, exports and sales analytics.
type OrderHandler struct {
	svc orderService
	log *slog.Logger
	now func() time.Time
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "order"), now: time.Now}
}

func orderListInput(r *http.Request) order.ListInput {
	return order.ListInput{
		Status:           queryString(r, "status"),
		CommissionStatus: queryString(r, "commissionStatus"),
		PartnerID:        queryString(r, "partnerId"),
		Email:            queryString(r, "email"),
		Limit:            queryInt(r, "limit", 50),
		Offset:           queryInt(r, "offset", 0),
	}
}

// ListOrders handles GET /api/admin/orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListOrders(r.Context(), orderListInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[orderResponse]{
		Items: mapSlice(res.Orders, toOrderResponse),
		Total: res.Total,
	})
}

// GetOrder handles GET /api/admin/orders/{id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	o, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

// ExportOrders handles GET /api/admin/orders/export with the list filters.
func (h *OrderHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportOrders(r.Context(), orderListInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	name := fmt.Sprintf("orders-%s.xlsx", h.now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// MaturingCommissions handles GET /api/admin/commissions/maturing.
func (h *OrderHandler) MaturingCommissions(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.MaturingCommissions(r.Context(), queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[orderResponse]{
		Items: mapSlice(res.Orders, toOrderResponse),
		Total: res.Total,
	})
}

// MatureCommissions handles POST /api/admin/commissions/mature.
func (h *OrderHandler) MatureCommissions(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MatureCommissions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"matured": n})
}

// CountryStats handles GET /api/admin/analytics/map.
func (h *OrderHandler) CountryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.CountryStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(stats, toCountryStatResponse))
}
