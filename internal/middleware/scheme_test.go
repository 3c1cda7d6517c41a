package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
)

func TestSchemeFor(t *testing.T) {
	assert.Equal(t, middleware.SchemeBearer, middleware.SchemeFor("/api/attendance/punch"))
	assert.Equal(t, middleware.SchemeBearer, middleware.SchemeFor("/api/auth/login"))
	assert.Equal(t, middleware.SchemeCookie, middleware.SchemeFor("/portal/attendance/punch"))
	assert.Equal(t, middleware.SchemeCookie, middleware.SchemeFor("/"))
	// Prefix match is exact: no trailing slash means no /api/ prefix.
	assert.Equal(t, middleware.SchemeCookie, middleware.SchemeFor("/apiary"))
}

func TestBearerCarrier(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	raw, ok := middleware.CarrierFor(middleware.SchemeBearer).Extract(req)
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", raw)
}

func TestBearerCarrier_MissingOrMalformed(t *testing.T) {
	for _, header := range []string{"", "abc.def.ghi", "Basic dXNlcg=="} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		_, ok := middleware.CarrierFor(middleware.SchemeBearer).Extract(req)
		assert.False(t, ok, header)
	}
}

func TestCookieCarrier(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/portal/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "abc.def.ghi"})

	raw, ok := middleware.CarrierFor(middleware.SchemeCookie).Extract(req)
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", raw)
}

func TestCookieCarrier_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/portal/auth/me", nil)

	_, ok := middleware.CarrierFor(middleware.SchemeCookie).Extract(req)
	assert.False(t, ok)
}

func TestCookieCarrier_IgnoresBearerHeader(t *testing.T) {
	// A bearer header on a cookie-scheme path does not authenticate.
	req := httptest.NewRequest(http.MethodGet, "/portal/auth/me", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	_, ok := middleware.CarrierFor(middleware.SchemeCookie).Extract(req)
	assert.False(t, ok)
}
