package auth

import (
	"net/http"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
	platform "github.com/Sumedhatongle/employee-management-system/internal/shared/request"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	result, _, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	clientType := platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	if platform.IsWebClient(clientType) {
		// Browser sessions get the token mirrored into the session cookie
		// so page navigation authenticates without a header.
		middleware.SetSessionCookie(c, result.Token, result.ExpiresAt)
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	result, err := h.service.Me(c.Request.Context(), id.UserID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}
