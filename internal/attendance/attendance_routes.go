package attendance

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/policy"
	"github.com/Sumedhatongle/employee-management-system/internal/token"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, tokens token.Service, policies policy.Service) {
	attendance := rg.Group("/attendance")
	attendance.Use(middleware.Authenticate(tokens))
	{
		attendance.POST("/punch",
			middleware.Authorize(policies, "attendance", "record"),
			middleware.Idempotency(handler.rdb),
			handler.RecordPunch)
		attendance.GET("/punches",
			middleware.Authorize(policies, "attendance", "read"),
			handler.History)
	}
}
