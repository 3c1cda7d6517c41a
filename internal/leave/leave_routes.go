package leave

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/policy"
	"github.com/Sumedhatongle/employee-management-system/internal/token"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, tokens token.Service, policies policy.Service) {
	leave := rg.Group("/leave")
	leave.Use(middleware.Authenticate(tokens))
	{
		leave.POST("/requests",
			middleware.Authorize(policies, "leave", "submit"),
			handler.Submit)
		leave.GET("/requests/mine",
			middleware.Authorize(policies, "leave", "read-own"),
			handler.ListMine)

		// HR-only review surface.
		leave.GET("/requests",
			middleware.Authorize(policies, "leave", "list"),
			handler.List)
		leave.POST("/requests/:id/approve",
			middleware.Authorize(policies, "leave", "approve"),
			handler.Approve)
		leave.POST("/requests/:id/reject",
			middleware.Authorize(policies, "leave", "reject"),
			handler.Reject)
	}
}
