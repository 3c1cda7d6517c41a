package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Sumedhatongle/employee-management-system/internal/attendance"
	"github.com/Sumedhatongle/employee-management-system/internal/auth"
	"github.com/Sumedhatongle/employee-management-system/internal/employee"
	"github.com/Sumedhatongle/employee-management-system/internal/leave"
	"github.com/Sumedhatongle/employee-management-system/internal/policy"
	"github.com/Sumedhatongle/employee-management-system/internal/token"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	tokens token.Service,
) error {
	policies, err := policy.NewService()
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, tokens)
	attendanceService := attendance.NewService(attendanceRepo)
	leaveService := leave.NewService(leaveRepo)
	employeeService := employee.NewService(employeeRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	leaveHandler := leave.NewHandler(leaveService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes ---
	// /api carries bearer tokens; /portal carries the session cookie and
	// serves browser clients. Same handlers behind both.
	for _, rg := range []*gin.RouterGroup{router.Group("/api"), router.Group("/portal")} {
		auth.RegisterRoutes(rg, authHandler, tokens)
		attendance.RegisterRoutes(rg, attendanceHandler, tokens, policies)
		leave.RegisterRoutes(rg, leaveHandler, tokens, policies)
		employee.RegisterRoutes(rg, employeeHandler, tokens, policies)
	}

	return nil
}
