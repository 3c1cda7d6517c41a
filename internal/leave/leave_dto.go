package leave

import (
	"time"

	"github.com/google/uuid"
)

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required,min=10"`
}

type LeaveResponse struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	LeaveType  string     `json:"leave_type"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Days       int        `json:"days"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	AppliedOn  time.Time  `json:"applied_on"`
	ReviewerID *uuid.UUID `json:"reviewer_id,omitempty"`
	ReviewedOn *time.Time `json:"reviewed_on,omitempty"`
}
