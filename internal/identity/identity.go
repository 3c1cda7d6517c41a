package identity

import (
	"fmt"

	"github.com/google/uuid"
)

type Role string

const (
	RoleHR       Role = "HR"
	RoleEmployee Role = "Employee"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleHR:
		return RoleHR, nil
	case RoleEmployee:
		return RoleEmployee, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// EmployeeLink records whether an account has an employee record attached.
// HR accounts may not have one; every call site that needs an employee id
// has to check the link instead of assuming it exists.
type EmployeeLink struct {
	id     uuid.UUID
	linked bool
}

func LinkedEmployee(id uuid.UUID) EmployeeLink {
	return EmployeeLink{id: id, linked: true}
}

func NoEmployee() EmployeeLink {
	return EmployeeLink{}
}

func (l EmployeeLink) ID() (uuid.UUID, bool) {
	return l.id, l.linked
}

// Identity is the authenticated principal for one request. It is built by
// token validation and discarded when the request ends.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     Role
	Employee EmployeeLink
}
