package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Sumedhatongle/employee-management-system/internal/identity"
	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/policy"
)

func authorizeRouter(t *testing.T, role identity.Role, resource, action string) *gin.Engine {
	t.Helper()
	policies, err := policy.NewService()
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			c.Set("identity", identity.Identity{
				UserID:   uuid.New(),
				Username: "someone",
				Role:     role,
				Employee: identity.NoEmployee(),
			})
		},
		middleware.Authorize(policies, resource, action),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func request(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	return w
}

func TestAuthorize_EmployeeCanRecordAttendance(t *testing.T) {
	w := request(authorizeRouter(t, identity.RoleEmployee, "attendance", "record"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorize_EmployeeCannotApproveLeave(t *testing.T) {
	w := request(authorizeRouter(t, identity.RoleEmployee, "leave", "approve"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestAuthorize_EmployeeCannotCreateEmployees(t *testing.T) {
	w := request(authorizeRouter(t, identity.RoleEmployee, "employee", "create"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorize_HRCanApproveLeave(t *testing.T) {
	w := request(authorizeRouter(t, identity.RoleHR, "leave", "approve"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorize_MissingIdentity(t *testing.T) {
	policies, err := policy.NewService()
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		middleware.Authorize(policies, "attendance", "record"),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := request(r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
