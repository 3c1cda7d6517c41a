package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Sumedhatongle/employee-management-system/internal/leave"
	leaveerrors "github.com/Sumedhatongle/employee-management-system/internal/leave/errors"
	"github.com/Sumedhatongle/employee-management-system/internal/leave/mock"
)

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	employeeID := uuid.New()
	var stored *leave.LeaveRequest
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lr *leave.LeaveRequest) error {
			stored = lr
			return nil
		})

	result, err := svc.Submit(context.Background(), employeeID, leave.SubmitLeaveRequest{
		LeaveType: "Casual",
		StartDate: futureDate(7),
		EndDate:   futureDate(9),
		Reason:    "Family function out of town",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pending", result.Status)
	assert.Equal(t, 3, result.Days)
	assert.Equal(t, employeeID, result.EmployeeID)
	assert.Nil(t, result.ReviewerID)
	assert.Equal(t, leave.StatusPending, stored.Status)
}

func TestSubmit_StartBeforeToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.New(), leave.SubmitLeaveRequest{
		LeaveType: "Sick",
		StartDate: futureDate(-1),
		EndDate:   futureDate(2),
		Reason:    "Recovering from a bad cold",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.New(), leave.SubmitLeaveRequest{
		LeaveType: "Casual",
		StartDate: futureDate(10),
		EndDate:   futureDate(8),
		Reason:    "Dates entered in the wrong order",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidRange)
}

func TestSubmit_SingleDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.Submit(context.Background(), uuid.New(), leave.SubmitLeaveRequest{
		LeaveType: "Other",
		StartDate: futureDate(3),
		EndDate:   futureDate(3),
		Reason:    "Attending a morning appointment",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Days)
}

func TestSubmit_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.New(), leave.SubmitLeaveRequest{
		LeaveType: "Sabbatical",
		StartDate: futureDate(3),
		EndDate:   futureDate(5),
		Reason:    "Extended research time away",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
}

func TestSubmit_BadDateFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.New(), leave.SubmitLeaveRequest{
		LeaveType: "Casual",
		StartDate: "03/15/2026",
		EndDate:   futureDate(5),
		Reason:    "Dates entered with slashes",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
}

func TestApprove_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	leaveID := uuid.New()
	reviewerID := uuid.New()
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		DecideIfPending(gomock.Any(), leaveID, leave.StatusApproved, reviewerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, status leave.Status, rid uuid.UUID, on time.Time) (*leave.LeaveRequest, error) {
			return &leave.LeaveRequest{
				ID:         id,
				EmployeeID: uuid.New(),
				LeaveType:  leave.TypeCasual,
				StartDate:  start,
				EndDate:    end,
				Status:     status,
				ReviewerID: &rid,
				ReviewedOn: &on,
			}, nil
		})

	result, err := svc.Approve(context.Background(), leaveID, reviewerID)

	assert.NoError(t, err)
	assert.Equal(t, "Approved", result.Status)
	assert.Equal(t, 3, result.Days)
	assert.Equal(t, &reviewerID, result.ReviewerID)
	assert.NotNil(t, result.ReviewedOn)
}

func TestApprove_AlreadyDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	leaveID := uuid.New()
	repo.EXPECT().
		DecideIfPending(gomock.Any(), leaveID, leave.StatusApproved, gomock.Any(), gomock.Any()).
		Return(nil, leaveerrors.ErrNotPending)

	_, err := svc.Approve(context.Background(), leaveID, uuid.New())

	assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
}

func TestReject_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	leaveID := uuid.New()
	repo.EXPECT().
		DecideIfPending(gomock.Any(), leaveID, leave.StatusRejected, gomock.Any(), gomock.Any()).
		Return(nil, leaveerrors.ErrNotFound)

	_, err := svc.Reject(context.Background(), leaveID, uuid.New())

	assert.ErrorIs(t, err, leaveerrors.ErrNotFound)
}

func TestList_StatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	pending := leave.StatusPending
	repo.EXPECT().
		FindByStatus(gomock.Any(), &pending, 20, 0).
		Return([]leave.LeaveRequest{}, int64(0), nil)

	_, _, err := svc.List(context.Background(), "Pending", 1, 20)
	assert.NoError(t, err)
}

func TestList_AllAndEmptyFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	repo.EXPECT().
		FindByStatus(gomock.Any(), gomock.Nil(), 20, 0).
		Return([]leave.LeaveRequest{}, int64(0), nil).
		Times(2)

	_, _, err := svc.List(context.Background(), "All", 1, 20)
	assert.NoError(t, err)

	_, _, err = svc.List(context.Background(), "", 1, 20)
	assert.NoError(t, err)
}

func TestList_PageWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	// Page 3 at 10 per page skips the first 20 rows.
	repo.EXPECT().
		FindByStatus(gomock.Any(), gomock.Nil(), 10, 20).
		Return([]leave.LeaveRequest{}, int64(47), nil)

	_, total, err := svc.List(context.Background(), "", 3, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(47), total)
}

func TestList_BadFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := leave.NewService(repo, zap.NewNop())

	_, _, err := svc.List(context.Background(), "Cancelled", 1, 20)
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)
}
