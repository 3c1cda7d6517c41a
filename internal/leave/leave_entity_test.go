package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sumedhatongle/employee-management-system/internal/leave"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDays_Inclusive(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{day(2024, 1, 10), day(2024, 1, 12), 3},
		{day(2024, 1, 10), day(2024, 1, 10), 1},
		{day(2024, 2, 28), day(2024, 3, 1), 3}, // leap year
		{day(2024, 12, 30), day(2025, 1, 2), 4},
	}

	for _, tc := range cases {
		lr := leave.LeaveRequest{StartDate: tc.start, EndDate: tc.end}
		assert.Equal(t, tc.want, lr.Days(), "%s..%s", tc.start.Format("2006-01-02"), tc.end.Format("2006-01-02"))
	}
}

func TestParseLeaveType(t *testing.T) {
	for raw, want := range map[string]leave.LeaveType{
		"Casual": leave.TypeCasual,
		"casual": leave.TypeCasual,
		"SICK":   leave.TypeSick,
		"other":  leave.TypeOther,
	} {
		got, ok := leave.ParseLeaveType(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got)
	}

	_, ok := leave.ParseLeaveType("Unpaid")
	assert.False(t, ok)
}
