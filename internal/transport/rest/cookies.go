package rest

import (
	"net/http"
	"time"

	"github.com/thronelight/platform/internal/config"
)

// RefCookieName carries the referral code from /r/{code} to checkout.
const RefCookieName = "tl_ref"

const refCookieTTL = 30 * 24 * time.Hour

// sessionCookies issues and clears the HttpOnly session cookie.
type sessionCookies struct {
	name   string
	secure bool
	ttl    time.Duration
}

func newSessionCookies(cfg config.AuthConfig) sessionCookies {
	return sessionCookies{name: cfg.CookieName, secure: cfg.CookieSecure, ttl: cfg.SessionTTL}
}

func (c sessionCookies) set(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func setRefCookie(w http.ResponseWriter, code string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(refCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func refCookie(r *http.Request) string {
	c, err := r.Cookie(RefCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
