package bootstrap

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sumedhatongle/employee-management-system/internal/auth"
	"github.com/Sumedhatongle/employee-management-system/internal/identity"
)

const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@localhost"
	seedAdminPassword = "admin123"
)

// SeedAdminUser guarantees at least one active HR account so a fresh
// deployment can be logged into. It never touches an existing HR user.
func SeedAdminUser(db *gorm.DB) error {
	ctx := context.Background()
	repo := auth.NewRepository(db)

	exists, err := repo.ExistsByRole(ctx, string(identity.RoleHR))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &auth.User{
		Username:     seedAdminUsername,
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Role:         string(identity.RoleHR),
		IsActive:     true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}

	zap.L().Warn("seeded default HR account, change its password",
		zap.String("username", seedAdminUsername))
	return nil
}
