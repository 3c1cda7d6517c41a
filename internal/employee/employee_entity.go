package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName  string    `gorm:"type:varchar(100);not null"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	Department string    `gorm:"type:varchar(100);not null"`
	Position   string    `gorm:"type:varchar(100);not null"`
	JoinedOn   time.Time `gorm:"type:date;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// Profile is the read model behind vw_employee_profile. The join fallback
// in the repository produces the same shape when the view is unavailable.
type Profile struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id"`
	Username   string    `gorm:"column:username"`
	Email      string    `gorm:"column:email"`
	Role       string    `gorm:"column:role"`
	FirstName  string    `gorm:"column:first_name"`
	LastName   string    `gorm:"column:last_name"`
	Department string    `gorm:"column:department"`
	Position   string    `gorm:"column:position"`
	JoinedOn   time.Time `gorm:"column:joined_on"`
}
