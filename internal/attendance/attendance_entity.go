package attendance

import (
	"strings"
	"time"

	attendanceerrors "github.com/Sumedhatongle/employee-management-system/internal/attendance/errors"

	"github.com/google/uuid"
)

const (
	PunchIn  = "IN"
	PunchOut = "OUT"
)

// Punch rows are append-only: no update or delete path exists anywhere in
// this package.
type Punch struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	PunchType  string    `gorm:"type:varchar(3);not null"`
	Timestamp  time.Time `gorm:"type:timestamptz;not null;index"`
	Location   *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
}

func (Punch) TableName() string {
	return "punches"
}

// ParsePunchType accepts IN/OUT in any casing.
func ParsePunchType(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case PunchIn:
		return PunchIn, nil
	case PunchOut:
		return PunchOut, nil
	default:
		return "", attendanceerrors.ErrInvalidPunchType
	}
}
