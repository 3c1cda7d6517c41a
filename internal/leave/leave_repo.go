package leave

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	leaveerrors "github.com/Sumedhatongle/employee-management-system/internal/leave/errors"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error)
	// FindByStatus returns one page of requests plus the total count for the
	// filter. A nil status matches every request.
	FindByStatus(ctx context.Context, status *Status, limit, offset int) ([]LeaveRequest, int64, error)
	// DecideIfPending flips a Pending request to the given status and stamps
	// the reviewer. It reports ErrNotPending when the row exists but was
	// already decided, ErrNotFound when it does not exist.
	DecideIfPending(ctx context.Context, id uuid.UUID, status Status, reviewerID uuid.UUID, reviewedOn time.Time) (*LeaveRequest, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).First(&lr, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("applied_on DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByStatus(ctx context.Context, status *Status, limit, offset int) ([]LeaveRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&LeaveRequest{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []LeaveRequest
	err := q.Order("applied_on DESC").Limit(limit).Offset(offset).Find(&requests).Error
	return requests, total, err
}

func (r *repository) DecideIfPending(ctx context.Context, id uuid.UUID, status Status, reviewerID uuid.UUID, reviewedOn time.Time) (*LeaveRequest, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":      status,
			"reviewer_id": reviewerID,
			"reviewed_on": reviewedOn,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Either the row was already decided or it never existed;
		// reload to tell the two apart.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, leaveerrors.ErrNotPending
	}

	return r.FindByID(ctx, id)
}
