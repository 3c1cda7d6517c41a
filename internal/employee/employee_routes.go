package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/policy"
	"github.com/Sumedhatongle/employee-management-system/internal/token"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, tokens token.Service, policies policy.Service) {
	employees := rg.Group("/employees")
	employees.Use(middleware.Authenticate(tokens))
	{
		employees.POST("",
			middleware.Authorize(policies, "employee", "create"),
			handler.Create)
		employees.GET("/profile",
			middleware.Authorize(policies, "employee", "read-profile"),
			handler.Profile)
	}
}
