package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
)

func newIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	rdb, rmock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/attendance/punch", middleware.Idempotency(rdb), func(c *gin.Context) {
		_, hasCache := c.Get("idempotency_cache_key")
		c.JSON(http.StatusCreated, gin.H{"cache_key_set": hasCache})
	})
	return r, rmock
}

func post(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/punch", strings.NewReader("{}"))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	r, rmock := newIdempotencyRouter(t)

	w := post(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"cache_key_set":false`)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_FirstAttemptAcquiresLock(t *testing.T) {
	r, rmock := newIdempotencyRouter(t)

	cacheKey := "idemp:/api/attendance/punch::abc-123"
	rmock.ExpectGet(cacheKey).RedisNil()
	rmock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	rmock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := post(r, "abc-123")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"cache_key_set":true`)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_LockReleasedWhenHandlerRejects(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/attendance/punch", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR"})
	})

	cacheKey := "idemp:/api/attendance/punch::retry-1"
	rmock.ExpectGet(cacheKey).RedisNil()
	rmock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	rmock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := post(r, "retry-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_ReplayServedFromCache(t *testing.T) {
	r, rmock := newIdempotencyRouter(t)

	cacheKey := "idemp:/api/attendance/punch::abc-123"
	rmock.ExpectGet(cacheKey).SetVal(`{"punch_type":"IN"}`)

	w := post(r, "abc-123")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"punch_type":"IN"`)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentAttemptRejected(t *testing.T) {
	r, rmock := newIdempotencyRouter(t)

	cacheKey := "idemp:/api/attendance/punch::abc-123"
	rmock.ExpectGet(cacheKey).RedisNil()
	rmock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := post(r, "abc-123")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PROCESSING")
	assert.NoError(t, rmock.ExpectationsWereMet())
}
