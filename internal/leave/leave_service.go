package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leaveerrors "github.com/Sumedhatongle/employee-management-system/internal/leave/errors"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/contextutil"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, employeeID uuid.UUID, req SubmitLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID uuid.UUID) ([]LeaveResponse, error)
	List(ctx context.Context, status string, page, pageSize int) ([]LeaveResponse, int64, error)
	Approve(ctx context.Context, id, reviewerID uuid.UUID) (LeaveResponse, error)
	Reject(ctx context.Context, id, reviewerID uuid.UUID) (LeaveResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Submit(ctx context.Context, employeeID uuid.UUID, req SubmitLeaveRequest) (LeaveResponse, error) {
	leaveType, ok := ParseLeaveType(req.LeaveType)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	start, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if start.Before(today) || end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	lr := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     StatusPending,
		AppliedOn:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, lr); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to submit leave request",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return LeaveResponse{}, err
	}

	return mapToLeaveResponse(lr), nil
}

func (s *service) ListMine(ctx context.Context, employeeID uuid.UUID) ([]LeaveResponse, error) {
	requests, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("failed to list own leave requests",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return nil, err
	}
	return mapToLeaveResponses(requests), nil
}

// List returns one page of requests across all employees plus the total
// matching the filter. An empty or "All" status matches everything.
func (s *service) List(ctx context.Context, status string, page, pageSize int) ([]LeaveResponse, int64, error) {
	var filter *Status
	switch status {
	case "", "All", "all":
	case string(StatusPending), string(StatusApproved), string(StatusRejected):
		st := Status(status)
		filter = &st
	default:
		return nil, 0, leaveerrors.ErrInvalidStatusFilter
	}

	requests, total, err := s.repo.FindByStatus(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		s.logger.Error("failed to list leave requests", zap.Error(err))
		return nil, 0, err
	}
	return mapToLeaveResponses(requests), total, nil
}

func (s *service) Approve(ctx context.Context, id, reviewerID uuid.UUID) (LeaveResponse, error) {
	return s.decide(ctx, id, reviewerID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id, reviewerID uuid.UUID) (LeaveResponse, error) {
	return s.decide(ctx, id, reviewerID, StatusRejected)
}

func (s *service) decide(ctx context.Context, id, reviewerID uuid.UUID, status Status) (LeaveResponse, error) {
	lr, err := s.repo.DecideIfPending(ctx, id, status, reviewerID, s.now().UTC())
	if err != nil {
		return LeaveResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("leave request decided",
		zap.String("leave_id", id.String()),
		zap.String("reviewer_id", reviewerID.String()),
		zap.String("status", string(status)))

	return mapToLeaveResponse(lr), nil
}

func mapToLeaveResponse(lr *LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		LeaveType:  string(lr.LeaveType),
		StartDate:  lr.StartDate.Format(dateLayout),
		EndDate:    lr.EndDate.Format(dateLayout),
		Days:       lr.Days(),
		Reason:     lr.Reason,
		Status:     string(lr.Status),
		AppliedOn:  lr.AppliedOn,
		ReviewerID: lr.ReviewerID,
		ReviewedOn: lr.ReviewedOn,
	}
}

func mapToLeaveResponses(requests []LeaveRequest) []LeaveResponse {
	responses := make([]LeaveResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, mapToLeaveResponse(&requests[i]))
	}
	return responses
}
