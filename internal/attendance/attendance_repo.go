package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Punch) error
	FindByEmployee(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]Punch, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]Punch, error) {
	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID)

	if from != nil {
		q = q.Where("timestamp >= ?", *from)
	}
	if to != nil {
		q = q.Where("timestamp <= ?", *to)
	}

	var punches []Punch
	err := q.Order("timestamp DESC").Find(&punches).Error
	return punches, err
}
