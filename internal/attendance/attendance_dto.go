package attendance

import (
	"time"

	"github.com/google/uuid"
)

type RecordPunchRequest struct {
	PunchType string     `json:"punch_type" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	Location  *string    `json:"location"`
}

type PunchResponse struct {
	PunchID    uuid.UUID `json:"punch_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	PunchType  string    `json:"punch_type"`
	Timestamp  time.Time `json:"timestamp"`
	Location   *string   `json:"location,omitempty"`
}
