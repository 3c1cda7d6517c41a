package employee

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Sumedhatongle/employee-management-system/internal/auth"
	employeeerrors "github.com/Sumedhatongle/employee-management-system/internal/employee/errors"
)

const uniqueViolation = "23505"

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// CreateWithUser inserts the account and the employee record in one
	// transaction; a duplicate username or email surfaces as ErrConflict.
	CreateWithUser(ctx context.Context, user *auth.User, emp *Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindProfileByView(ctx context.Context, employeeID uuid.UUID) (*Profile, error)
	FindProfileByJoin(ctx context.Context, employeeID uuid.UUID) (*Profile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithUser(ctx context.Context, user *auth.User, emp *Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		user.EmployeeID = &emp.ID
		return tx.Create(user).Error
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return employeeerrors.ErrConflict
	}
	return err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employeeerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *repository) FindProfileByView(ctx context.Context, employeeID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).
		Raw(`SELECT employee_id, username, email, role, first_name, last_name,
		            department, position, joined_on
		     FROM vw_employee_profile WHERE employee_id = ?`, employeeID).
		Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.EmployeeID == uuid.Nil {
		return nil, employeeerrors.ErrNotFound
	}
	return &profile, nil
}

func (r *repository) FindProfileByJoin(ctx context.Context, employeeID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := r.db.WithContext(ctx).
		Raw(`SELECT e.id AS employee_id, u.username, u.email, u.role,
		            e.first_name, e.last_name, e.department, e.position,
		            e.joined_on
		     FROM employees e
		     JOIN users u ON u.employee_id = e.id
		     WHERE e.id = ?`, employeeID).
		Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.EmployeeID == uuid.Nil {
		return nil, employeeerrors.ErrNotFound
	}
	return &profile, nil
}
