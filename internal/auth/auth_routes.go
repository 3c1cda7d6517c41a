package auth

import (
	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens token.Service) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", middleware.Authenticate(tokens), handler.Me)
	}
}
