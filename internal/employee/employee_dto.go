package employee

import (
	"time"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=HR Employee"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
	JoinedOn   string `json:"joined_on" binding:"required"`
}

type EmployeeResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	JoinedOn   string    `json:"joined_on"`
}

// ProfileResponse carries where the data came from: "view" for the
// vw_employee_profile fast path, "join" for the table fallback, "cache"
// for a Redis hit. Clients can ignore it; operators watch it.
type ProfileResponse struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	JoinedOn   time.Time `json:"joined_on"`
	Source     string    `json:"source"`
}
