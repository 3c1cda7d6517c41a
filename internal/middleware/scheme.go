package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie that mirrors the bearer token for browser
// sessions, so page requests authenticate without an Authorization header.
const SessionCookieName = "auth_token"

// APIPathPrefix splits the two credential carriers: requests under it are
// programmatic API calls and present a bearer token, everything else is a
// browser session backed by the cookie.
const APIPathPrefix = "/api/"

type Scheme string

const (
	SchemeBearer Scheme = "bearer"
	SchemeCookie Scheme = "cookie"
)

// SchemeFor is the static selection rule, evaluated once per request before
// any other authorization step.
func SchemeFor(path string) Scheme {
	if strings.HasPrefix(path, APIPathPrefix) {
		return SchemeBearer
	}
	return SchemeCookie
}

// CredentialCarrier extracts a raw token from a request. The authenticate
// middleware does not care which carrier produced it.
type CredentialCarrier interface {
	Extract(r *http.Request) (string, bool)
}

type bearerCarrier struct{}

func (bearerCarrier) Extract(r *http.Request) (string, bool) {
	raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || raw == "" {
		return "", false
	}
	return raw, true
}

type cookieCarrier struct{}

func (cookieCarrier) Extract(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func CarrierFor(scheme Scheme) CredentialCarrier {
	if scheme == SchemeCookie {
		return cookieCarrier{}
	}
	return bearerCarrier{}
}

// SetSessionCookie mirrors a token into the session cookie. Expiry follows
// the token's own expiry.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
