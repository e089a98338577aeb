package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/partner"
	"github.com/thronelight/platform/internal/transport/middleware"
	"github.com/thronelight/platform/pkg/ctxutil"
)

type partnerService interface {
	Login(ctx context.Context, input partner.LoginInput) (*partner.LoginResult, error)
	Session(ctx context.Context, token string) (*partner.SessionInfo, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	Dashboard(ctx context.Context) (*domain.PartnerDashboard, error)
	ListSubLinks(ctx context.Context) ([]domain.SubLink, error)
	CreateSubLink(ctx context.Context, input partner.CreateSubLinkInput) (*domain.SubLink, error)
	DeleteSubLink(ctx context.Context, id uuid.UUID) error
	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, input partner.CreateTeamMemberInput) (*partner.CreateTeamMemberResult, error)
	UpdateTeamMember(ctx context.Context, id uuid.UUID, input partner.UpdateTeamMemberInput) (*domain.TeamMember, error)
	DeactivateTeamMember(ctx context.Context, id uuid.UUID) error

	ListPartners(ctx context.Context) ([]domain.Partner, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
	ListPartnerTeam(ctx context.Context, partnerID uuid.UUID) ([]domain.TeamMember, error)
	CreatePartner(ctx context.Context, input partner.CreatePartnerInput) (*partner.CreatePartnerResult, error)
	UpdatePartner(ctx context.Context, id uuid.UUID, input partner.UpdatePartnerInput) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) error
	RegenerateAccessCode(ctx context.Context, id uuid.UUID) (*domain.Partner, error)
}

// PartnerHandler serves the partner portal and admin partner management.
type PartnerHandler struct {
	svc     partnerService
	cookies sessionCookies
	log     *slog.Logger
}

// NewPartnerHandler creates a PartnerHandler.
func NewPartnerHandler(svc partnerService, cookies sessionCookies, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{svc: svc, cookies: cookies, log: logger.With("handler", "partner")}
}

type accessCodeLoginRequest struct {
	AccessCode string `json:"accessCode"`
}

type partnerLoginResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	Session   sessionInfoResponse `json:"session"`
}

// Login handles POST /api/partner/login.
func (h *PartnerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req accessCodeLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Login(r.Context(), partner.LoginInput{
		AccessCode: req.AccessCode,
		ClientKey:  middleware.ClientIP(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookies.set(w, res.Token, res.Session.ExpiresAt)
	writeJSON(w, http.StatusOK, partnerLoginResponse{
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		Session:   toSessionInfoResponse(&res.SessionInfo),
	})
}

// Session handles GET /api/partner/session. It never fails on a bad or
// expired token; it reports authenticated=false instead.
func (h *PartnerHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r, h.cookies.name)
	if token == "" {
		writeJSON(w, http.StatusOK, sessionInfoResponse{})
		return
	}
	info, err := h.svc.Session(r.Context(), token)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionInfoResponse(info))
}

// Logout handles POST /api/partner/logout.
func (h *PartnerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if p, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
		if err := h.svc.Logout(r.Context(), p.SessionID); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	h.cookies.clear(w)
	writeOK(w)
}

// Dashboard handles GET /api/partner/dashboard.
func (h *PartnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d))
}

// ListSubLinks handles GET /api/partner/sublinks.
func (h *PartnerHandler) ListSubLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.ListSubLinks(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(links, toSubLinkResponse))
}

type createSubLinkRequest struct {
	Label string `json:"label"`
}

// CreateSubLink handles POST /api/partner/sublinks.
func (h *PartnerHandler) CreateSubLink(w http.ResponseWriter, r *http.Request) {
	var req createSubLinkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	link, err := h.svc.CreateSubLink(r.Context(), partner.CreateSubLinkInput{Label: req.Label})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubLinkResponse(link))
}

// DeleteSubLink handles DELETE /api/partner/sublinks/{id}.
func (h *PartnerHandler) DeleteSubLink(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteSubLink)
}

// ListTeam handles GET /api/partner/team.
func (h *PartnerHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListTeam(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(members, toTeamMemberResponse))
}

type createTeamMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type createTeamMemberResponse struct {
	Member    teamMemberResponse `json:"member"`
	EmailSent bool               `json:"emailSent"`
}

// CreateTeamMember handles POST /api/partner/team. The access code is
// returned once so the partner can share it if the invite email failed.
func (h *PartnerHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req createTeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.CreateTeamMember(r.Context(), partner.CreateTeamMemberInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.TeamRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m := toTeamMemberResponse(res.Member)
	m.AccessCode = res.Member.AccessCode
	writeJSON(w, http.StatusCreated, createTeamMemberResponse{Member: m, EmailSent: res.EmailSent})
}

type updateTeamMemberRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// UpdateTeamMember handles PATCH /api/partner/team/{id}.
func (h *PartnerHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateTeamMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := h.svc.UpdateTeamMember(r.Context(), id, partner.UpdateTeamMemberInput{
		Name:   req.Name,
		Role:   enumPtr[domain.TeamRole](req.Role),
		Active: req.Active,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamMemberResponse(m))
}

// DeactivateTeamMember handles DELETE /api/partner/team/{id}.
func (h *PartnerHandler) DeactivateTeamMember(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeactivateTeamMember)
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

// ListPartners handles GET /api/admin/partners.
func (h *PartnerHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListPartners(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(ps, toPartnerAdminResponse))
}

// GetPartner handles GET /api/admin/partners/{id}.
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetPartner(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPartnerAdminResponse(p))
}

// ListPartnerTeam handles GET /api/admin/partners/{id}/team.
func (h *PartnerHandler) ListPartnerTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	members, err := h.svc.ListPartnerTeam(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(members, toTeamMemberResponse))
}

type createPartnerRequest struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Slug              string  `json:"slug"`
	CouponCode        string  `json:"couponCode"`
	CommissionPercent float64 `json:"commissionPercent"`
	ClickBountyCents  int64   `json:"clickBountyCents"`
	DiscountPercent   float64 `json:"discountPercent"`
}

type createPartnerResponse struct {
	Partner   partnerResponse `json:"partner"`
	EmailSent bool            `json:"emailSent"`
}

// CreatePartner handles POST /api/admin/partners.
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req createPartnerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.CreatePartner(r.Context(), partner.CreatePartnerInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createPartnerResponse{
		Partner:   toPartnerAdminResponse(res.Partner),
		EmailSent: res.EmailSent,
	})
}

type updatePartnerRequest struct {
	Name              *string  `json:"name"`
	Email             *string  `json:"email"`
	Slug              *string  `json:"slug"`
	CouponCode        *string  `json:"couponCode"`
	CommissionPercent *float64 `json:"commissionPercent"`
	ClickBountyCents  *int64   `json:"clickBountyCents"`
	DiscountPercent   *float64 `json:"discountPercent"`
	Active            *bool    `json:"active"`
}

// UpdatePartner handles PATCH /api/admin/partners/{id}.
func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updatePartnerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.UpdatePartner(r.Context(), id, partner.UpdatePartnerInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPartnerAdminResponse(p))
}

// DeletePartner handles DELETE /api/admin/partners/{id}.
func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeletePartner)
}

// RegenerateAccessCode handles POST /api/admin/partners/{id}/access-code.
func (h *PartnerHandler) RegenerateAccessCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.RegenerateAccessCode(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPartnerAdminResponse(p))
}
