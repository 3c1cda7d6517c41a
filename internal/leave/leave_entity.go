package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type LeaveType string

const (
	TypeCasual LeaveType = "Casual"
	TypeSick   LeaveType = "Sick"
	TypeOther  LeaveType = "Other"
)

func ParseLeaveType(s string) (LeaveType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "casual":
		return TypeCasual, true
	case "sick":
		return TypeSick, true
	case "other":
		return TypeOther, true
	default:
		return "", false
	}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest moves Pending -> Approved or Pending -> Rejected, once.
// Decided rows are never updated again; the conditional update in the
// repository enforces that under concurrent reviewers.
type LeaveRequest struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index"`
	LeaveType  LeaveType  `gorm:"type:varchar(10);not null"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    time.Time  `gorm:"type:date;not null"`
	Reason     string     `gorm:"type:text;not null"`
	Status     Status     `gorm:"type:varchar(10);not null;default:'Pending';index"`
	AppliedOn  time.Time  `gorm:"not null"`
	ReviewerID *uuid.UUID `gorm:"type:uuid"`
	ReviewedOn *time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Days counts calendar days in the request, inclusive of both ends.
func (lr *LeaveRequest) Days() int {
	return int(lr.EndDate.Sub(lr.StartDate).Hours()/24) + 1
}
