package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sumedhatongle/employee-management-system/internal/bootstrap"
	"github.com/Sumedhatongle/employee-management-system/internal/middleware"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/connection"
	"github.com/Sumedhatongle/employee-management-system/internal/token"
)

func BuildApp(router *gin.Engine, cfg Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	tokens := token.NewService(cfg.SigningKey, token.WithTTL(cfg.TokenTTL))

	if err := bootstrap.SeedAdminUser(gormDB); err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, gormDB, rdb, tokens)
}
