package auth

import (
	"time"

	"github.com/Sumedhatongle/employee-management-system/internal/identity"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid;uniqueIndex"` // nil for accounts without an employee record
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'Employee'"`
	IsActive     bool       `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity builds the request principal for this user. Fails if the stored
// role is not one of the known roles.
func (u *User) Identity() (identity.Identity, error) {
	role, err := identity.ParseRole(u.Role)
	if err != nil {
		return identity.Identity{}, err
	}

	link := identity.NoEmployee()
	if u.EmployeeID != nil && *u.EmployeeID != uuid.Nil {
		link = identity.LinkedEmployee(*u.EmployeeID)
	}

	return identity.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     role,
		Employee: link,
	}, nil
}
