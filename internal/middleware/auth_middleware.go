package middleware

import (
	"net/http"
	"time"

	"github.com/Sumedhatongle/employee-management-system/internal/identity"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/contextutil"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/response"
	"github.com/Sumedhatongle/employee-management-system/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// IdentityFromContext returns the authenticated principal set by
// Authenticate. Absent when the route has no auth middleware.
func IdentityFromContext(c *gin.Context) (identity.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return identity.Identity{}, false
	}
	id, ok := v.(identity.Identity)
	return id, ok
}

// Authenticate resolves the request's credential carrier by path, validates
// the token it carries and stashes the resulting identity. Cookie-carried
// tokens past half their lifetime are transparently reissued so browser
// sessions slide; bearer tokens never are.
func Authenticate(tokens token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := SchemeFor(c.Request.URL.Path)

		raw, found := CarrierFor(scheme).Extract(c.Request)
		if !found {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		id, expiresAt, err := tokens.Validate(raw)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		if scheme == SchemeCookie && time.Until(expiresAt) < tokens.TTL()/2 {
			if fresh, freshExpiry, err := tokens.Issue(id); err == nil {
				SetSessionCookie(c, fresh, freshExpiry)
			}
		}

		c.Set(identityKey, id)

		// Request-scoped logs carry the caller from here on.
		ctx := contextutil.WithUserID(c.Request.Context(), id.UserID.String())
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, nil).With(
			zap.String("user_id", id.UserID.String()),
		))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
