package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/internal/service/admin"
	"github.com/thronelight/platform/internal/transport/middleware"
	"github.com/thronelight/platform/pkg/ctxutil"
)

type adminService interface {
	Login(ctx context.Context, input admin.LoginInput) (*admin.LoginResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Me(ctx context.Context) (*domain.AdminUser, error)
	ChangePassword(ctx context.Context, current, next string) error
	ListAdmins(ctx context.Context) ([]domain.AdminUser, error)
	CreateAdmin(ctx context.Context, input admin.CreateAdminInput) (*domain.AdminUser, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, input admin.UpdateAdminInput) (*domain.AdminUser, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}

type auditService interface {
	EntityHistory(ctx context.Context, entityType string, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	AdminActivity(ctx context.Context, adminID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
}

// AdminHandler serves admin authentication, admin accounts and the audit log.
type AdminHandler struct {
	svc     adminService
	audit   auditService
	cookies sessionCookies
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, audit auditService, cookies sessionCookies, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		audit:   audit,
		cookies: cookies,
		log:     logger.With("handler", "admin"),
	}
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     adminResponse `json:"admin"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Login(r.Context(), admin.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		ClientKey: middleware.ClientIP(r),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookies.set(w, res.Token, res.Session.ExpiresAt)
	writeJSON(w, http.StatusOK, adminLoginResponse{
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		Admin:     toAdminResponse(res.Admin),
	})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if p, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
		if err := h.svc.Logout(r.Context(), p.SessionID); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	h.cookies.clear(w)
	writeOK(w)
}

// Me handles GET /api/admin/me.
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdminResponse(a))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /api/admin/me/password.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeOK(w)
}

// ListAdmins handles GET /api/admin/admins.
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.svc.ListAdmins(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(admins, toAdminResponse))
}

type createAdminRequest struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Password string   `json:"password"`
	Role     string   `json:"role"`
	Scopes   []string `json:"scopes"`
}

// CreateAdmin handles POST /api/admin/admins.
func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req createAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	role := domain.AdminRole(req.Role)
	if role == "" {
		role = domain.AdminRoleSub
	}
	a, err := h.svc.CreateAdmin(r.Context(), admin.CreateAdminInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     role,
		Scopes:   toScopes(req.Scopes),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAdminResponse(a))
}

type updateAdminRequest struct {
	Name   *string   `json:"name"`
	Role   *string   `json:"role"`
	Scopes *[]string `json:"scopes"`
}

// UpdateAdmin handles PATCH /api/admin/admins/{id}.
func (h *AdminHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input := admin.UpdateAdminInput{
		Name: req.Name,
		Role: enumPtr[domain.AdminRole](req.Role),
	}
	if req.Scopes != nil {
		scopes := toScopes(*req.Scopes)
		input.Scopes = &scopes
	}
	a, err := h.svc.UpdateAdmin(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdminResponse(a))
}

// DeleteAdmin handles DELETE /api/admin/admins/{id}.
func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	deleteByID(h.log, w, r, h.svc.DeleteAdmin)
}

// AdminActivity handles GET /api/admin/admins/{id}/activity.
func (h *AdminHandler) AdminActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	records, err := h.audit.AdminActivity(r.Context(), id, queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(records, toAuditResponse))
}

// EntityHistory handles GET /api/admin/audit?entityType=&entityId=.
func (h *AdminHandler) EntityHistory(w http.ResponseWriter, r *http.Request) {
	entityID, err := uuid.Parse(queryString(r, "entityId"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("entityId", "invalid id"))
		return
	}
	records, err := h.audit.EntityHistory(r.Context(), queryString(r, "entityType"), entityID, queryInt(r, "limit", 50))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(records, toAuditResponse))
}

func toScopes(in []string) []domain.AdminScope {
	out := make([]domain.AdminScope, 0, len(in))
	for _, s := range in {
		out = append(out, domain.AdminScope(s))
	}
	return out
}
