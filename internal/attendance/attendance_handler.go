package attendance

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

// RecordPunch appends a punch for the caller's linked employee record.
func (h *Handler) RecordPunch(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	employeeID, linked := id.Employee.ID()
	if !linked {
		httpErr := apperror.ToHTTP(apperror.ErrNoEmployeeRecord)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	var req RecordPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	result, err := h.service.RecordPunch(c.Request.Context(), employeeID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if cacheKey, ok := c.Get("idempotency_cache_key"); ok && h.rdb != nil {
		if body, err := json.Marshal(result); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey.(string), body, 10*time.Minute)
		}
	}

	response.Success(c, http.StatusCreated, result, nil)
}

// History returns the caller's punches, optionally bounded by from/to.
// Bounds accept RFC 3339 timestamps or plain dates; a plain-date "to"
// covers the whole day.
func (h *Handler) History(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	employeeID, linked := id.Employee.ID()
	if !linked {
		httpErr := apperror.ToHTTP(apperror.ErrNoEmployeeRecord)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	from, err := parseBound(c.Query("from"), false)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	to, err := parseBound(c.Query("to"), true)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	result, err := h.service.History(c.Request.Context(), employeeID, from, to)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func parseBound(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperror.New(
			apperror.CodeInvalidInput,
			"Date bounds must be YYYY-MM-DD or RFC 3339 timestamps",
			http.StatusBadRequest,
		)
	}
	t = t.UTC()
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
