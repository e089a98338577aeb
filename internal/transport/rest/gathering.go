package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/gathering"
)

type gatheringService interface {
	List(ctx context.Context, includePast bool) ([]gathering.Listing, error)
	Get(ctx context.Context, id string) (*gathering.Listing, error)
	Attendees(ctx context.Context, id string) (*domain.Gathering, error)
	RSVP(ctx context.Context, id string, input gathering.RSVPInput) (*gathering.Listing, error)
	Create(ctx context.Context, input gathering.CreateInput) (*domain.Gathering, error)
}

// GatheringHandler serves reader gatherings and their RSVPs.
type GatheringHandler struct {
	svc gatheringService
	log *slog.Logger
}

// NewGatheringHandler creates a GatheringHandler.
func NewGatheringHandler(svc gatheringService, logger *slog.Logger) *GatheringHandler {
	return &GatheringHandler{svc: svc, log: logger.With("handler", "gathering")}
}

// List handles GET /api/gatherings (upcoming only).
func (h *GatheringHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListAll handles GET /api/admin/gatherings, past events included.
func (h *GatheringHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *GatheringHandler) list(w http.ResponseWriter, r *http.Request, includePast bool) {
	items, err := h.svc.List(r.Context(), includePast)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toGatheringResponse))
}

// Get handles GET /api/gatherings/{id}.
func (h *GatheringHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGatheringResponse(l))
}

type rsvpRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Guests int    `json:"guests"`
}

// RSVP handles POST /api/gatherings/{id}/rsvp.
func (h *GatheringHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	var req rsvpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	l, err := h.svc.RSVP(r.Context(), chi.URLParam(r, "id"), gathering.RSVPInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGatheringResponse(l))
}

type attendeesResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	RSVPs []rsvpResponse `json:"rsvps"`
	Seats int            `json:"seats"`
}

// Attendees handles GET /api/admin/gatherings/{id}/attendees.
func (h *GatheringHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Attendees(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, attendeesResponse{
		ID:    g.ID,
		Title: g.Title,
		RSVPs: mapSlice(g.RSVPs, toRSVPResponse),
		Seats: g.Seats(),
	})
}

type createGatheringRequest struct {
	Title    string    `json:"title"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"startsAt"`
	Capacity int       `json:"capacity"`
}

// Create handles POST /api/admin/gatherings.
func (h *GatheringHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGatheringRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.svc.Create(r.Context(), gathering.CreateInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": g.ID})
}
