package attendance

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	attendanceerrors "github.com/Sumedhatongle/employee-management-system/internal/attendance/errors"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
	"github.com/Sumedhatongle/employee-management-system/internal/shared/contextutil"
)

type Service interface {
	RecordPunch(ctx context.Context, employeeID uuid.UUID, req RecordPunchRequest) (PunchResponse, error)
	History(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]PunchResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) RecordPunch(ctx context.Context, employeeID uuid.UUID, req RecordPunchRequest) (PunchResponse, error) {
	punchType, err := ParsePunchType(req.PunchType)
	if err != nil {
		return PunchResponse{}, attendanceerrors.ErrInvalidPunchType
	}

	ts := s.now().UTC()
	if req.Timestamp != nil {
		ts = req.Timestamp.UTC()
	}

	// The ledger is append-only and deliberately does not enforce IN/OUT
	// alternation; consecutive punches of the same type are legal (missed
	// punches, device retries) and are reconciled downstream.
	punch := &Punch{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		PunchType:  punchType,
		Timestamp:  ts,
		Location:   req.Location,
	}

	if err := s.repo.Create(ctx, punch); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to record punch",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return PunchResponse{}, apperror.Wrap(err,
			apperror.CodeInternalError, "Could not record punch", http.StatusInternalServerError)
	}

	return mapToPunchResponse(punch), nil
}

func (s *service) History(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]PunchResponse, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, attendanceerrors.ErrInvalidDateBound
	}

	punches, err := s.repo.FindByEmployee(ctx, employeeID, from, to)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to load punch history",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err))
		return nil, err
	}

	responses := make([]PunchResponse, 0, len(punches))
	for i := range punches {
		responses = append(responses, mapToPunchResponse(&punches[i]))
	}
	return responses, nil
}

func mapToPunchResponse(p *Punch) PunchResponse {
	return PunchResponse{
		PunchID:    p.ID,
		EmployeeID: p.EmployeeID,
		PunchType:  string(p.PunchType),
		Timestamp:  p.Timestamp,
		Location:   p.Location,
	}
}
