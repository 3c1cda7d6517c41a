package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sumedhatongle/employee-management-system/internal/leave"
	leaveerrors "github.com/Sumedhatongle/employee-management-system/internal/leave/errors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	return db, mock
}

func leaveRows(id, employeeID uuid.UUID, status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "employee_id", "leave_type", "start_date", "end_date",
		"reason", "status", "applied_on", "reviewer_id", "reviewed_on",
	}).AddRow(
		id, employeeID, "Casual", now.AddDate(0, 0, 7), now.AddDate(0, 0, 9),
		"Family function out of town", status, now, nil, nil,
	)
}

func TestFindByStatus_PagesAndCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := leave.NewRepository(db)

	pending := leave.StatusPending
	mock.ExpectQuery(`SELECT count\(\*\) FROM "leave_requests" WHERE status =`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(47))
	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE status = .+ ORDER BY applied_on DESC LIMIT .+ OFFSET`).
		WillReturnRows(leaveRows(uuid.New(), uuid.New(), "Pending"))

	requests, total, err := repo.FindByStatus(context.Background(), &pending, 10, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(47), total)
	assert.Len(t, requests, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideIfPending_UpdatesPendingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := leave.NewRepository(db)

	leaveID := uuid.New()
	reviewerID := uuid.New()

	mock.ExpectExec(`UPDATE "leave_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE id =`).
		WillReturnRows(leaveRows(leaveID, uuid.New(), "Approved"))

	lr, err := repo.DecideIfPending(context.Background(), leaveID, leave.StatusApproved, reviewerID, time.Now().UTC())

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, lr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideIfPending_AlreadyDecided(t *testing.T) {
	db, mock := newMockDB(t)
	repo := leave.NewRepository(db)

	leaveID := uuid.New()

	// Zero rows touched but the row exists: another reviewer got there first.
	mock.ExpectExec(`UPDATE "leave_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE id =`).
		WillReturnRows(leaveRows(leaveID, uuid.New(), "Rejected"))

	_, err := repo.DecideIfPending(context.Background(), leaveID, leave.StatusApproved, uuid.New(), time.Now().UTC())

	assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideIfPending_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := leave.NewRepository(db)

	mock.ExpectExec(`UPDATE "leave_requests" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.DecideIfPending(context.Background(), uuid.New(), leave.StatusRejected, uuid.New(), time.Now().UTC())

	assert.ErrorIs(t, err, leaveerrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
