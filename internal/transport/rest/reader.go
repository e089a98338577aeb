package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/library"
	"github.com/thronelight/platform/internal/transport/middleware"
	"github.com/thronelight/platform/pkg/ctxutil"
)

type libraryService interface {
	Login(ctx context.Context, input library.LoginInput) (*library.LoginResult, error)
	Library(ctx context.Context) ([]library.Book, error)
	GetPosition(ctx context.Context, bookID string) (*domain.ReadingPosition, error)
	SavePosition(ctx context.Context, bookID string, input library.PositionInput) (*domain.ReadingPosition, error)

	ActiveReaders(ctx context.Context, window time.Duration) ([]domain.ReadingPosition, error)
	GrantAccess(ctx context.Context, input library.GrantInput) (*library.GrantResult, error)
	ListAccess(ctx context.Context, addr string) ([]domain.LibraryAccess, error)
	RevokeAccess(ctx context.Context, id uuid.UUID) error
}

type sessionEnder interface {
	End(ctx context.Context, sessionID uuid.UUID) error
}

// ReaderHandler serves the reader app and admin library access management.
type ReaderHandler struct {
	svc      libraryService
	sessions sessionEnder
	cookies  sessionCookies
	log      *slog.Logger
}

// NewReaderHandler creates a ReaderHandler.
func NewReaderHandler(svc libraryService, sessions sessionEnder, cookies sessionCookies, logger *slog.Logger) *ReaderHandler {
	return &ReaderHandler{svc: svc, sessions: sessions, cookies: cookies, log: logger.With("handler", "reader")}
}

type readerLoginRequest struct {
	Email      string `json:"email"`
	AccessCode string `json:"accessCode"`
}

type readerLoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Email     string         `json:"email"`
	Books     []bookResponse `json:"books"`
}

// Login handles POST /api/reader/login.
func (h *ReaderHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req readerLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Login(r.Context(), library.LoginInput{
		Email:      req.Email,
		AccessCode: req.AccessCode,
		ClientKey:  middleware.ClientIP(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookies.set(w, res.Token, res.Session.ExpiresAt)
	writeJSON(w, http.StatusOK, readerLoginResponse{
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		Email:     res.Reader.Email,
		Books:     mapSlice(res.Books, toBookResponse),
	})
}

// Logout handles POST /api/reader/logout.
func (h *ReaderHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if p, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
		if err := h.sessions.End(r.Context(), p.SessionID); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	h.cookies.clear(w)
	writeOK(w)
}

// Library handles GET /api/reader/library.
func (h *ReaderHandler) Library(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Library(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(books, toBookResponse))
}

// GetPosition handles GET /api/reader/books/{bookID}/position.
func (h *ReaderHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	pos, err := h.svc.GetPosition(r.Context(), chi.URLParam(r, "bookID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponse(pos))
}

type positionRequest struct {
	CFI        string  `json:"cfi"`
	Percentage float64 `json:"percentage"`
	Chapter    *string `json:"chapter"`
}

// SavePosition handles PUT /api/reader/books/{bookID}/position.
func (h *ReaderHandler) SavePosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos, err := h.svc.SavePosition(r.Context(), chi.URLParam(r, "bookID"), library.PositionInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPositionResponse(pos))
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

// ActiveReaders handles GET /api/admin/readers/active?window=15m.
func (h *ReaderHandler) ActiveReaders(w http.ResponseWriter, r *http.Request) {
	var window time.Duration
	if v := queryString(r, "window"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("window", "invalid duration"))
			return
		}
		window = d
	}
	positions, err := h.svc.ActiveReaders(r.Context(), window)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(positions, toActiveReaderResponse))
}

type grantAccessRequest struct {
	Email   string   `json:"email"`
	BookIDs []string `json:"bookIds"`
}

type grantAccessResponse struct {
	AccessCode string           `json:"accessCode"`
	Grants     []accessResponse `json:"grants"`
	EmailSent  bool             `json:"emailSent"`
}

// GrantAccess handles POST /api/admin/access-codes.
func (h *ReaderHandler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	var req grantAccessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.GrantAccess(r.Context(), library.GrantInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, grantAccessResponse{
		AccessCode: res.AccessCode,
		Grants:     mapSlice(res.Grants, toAccessResponse),
		EmailSent:  res.EmailSent,
	})
}

// ListAccess handles GET /api/admin/access-codes?email=.
func (h *ReaderHandler) ListAccess(w http.ResponseWriter, r *http.Request) {
	grants, err := h.svc.ListAccess(r.Context(), queryString(r, "email"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(grants, toAccessResponse))
}

// RevokeAccess handles DELETE /api/admin/access-codes/{id}.
func (h *ReaderHandler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.RevokeAccess)
}
