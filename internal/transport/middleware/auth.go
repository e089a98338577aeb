package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/thronelight/platform/internal/domain"
	"github.com/thronelight/platform/pkg/ctxutil"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}

type scopeAuthorizer interface {
	Authorize(ctx context.Context, scope domain.AdminScope) error
}

// Session resolves the session token from the cookie or a Bearer header
// into a principal. Requests without a usable token continue anonymously;
// RequireRole rejects them where a login is needed.
func Session(auth authenticator, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			p, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if h := holderFrom(r.Context()); h != nil {
				h.set(p)
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
		})
	}
}

// SessionToken returns the Bearer token, else the session cookie value.
func SessionToken(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// RequireRole rejects anonymous requests with 401 and other roles with 403.
func RequireRole(roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.PrincipalFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !ctxutil.HasRole(r.Context(), roles...) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireScope lets an admin through only when their account grants scope.
// It must run after RequireRole(domain.RoleAdmin).
func RequireScope(authz scopeAuthorizer, scope domain.AdminScope, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authz.Authorize(r.Context(), scope); err != nil {
				switch {
				case errors.Is(err, domain.ErrForbidden):
					writeError(w, http.StatusForbidden, "missing scope "+string(scope))
				case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotFound):
					writeError(w, http.StatusUnauthorized, "authentication required")
				default:
					logger.ErrorContext(r.Context(), "scope check failed", slog.String("error", err.Error()))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// principalHolder carries the principal back out to Logger.
type principalHolder struct {
	mu sync.Mutex
	p  *domain.Principal
}

func (h *principalHolder) set(p domain.Principal) {
	h.mu.Lock()
	h.p = &p
	h.mu.Unlock()
}

func (h *principalHolder) get() (domain.Principal, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.p == nil {
		return domain.Principal{}, false
	}
	return *h.p, true
}

type holderKey struct{}

func withHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func holderFrom(ctx context.Context) *principalHolder {
	h, _ := ctx.Value(holderKey{}).(*principalHolder)
	return h
}
