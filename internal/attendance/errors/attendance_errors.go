package attendanceerrors

import (
	"net/http"

	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
)

var (
	ErrInvalidPunchType = apperror.New(
		"INVALID_PUNCH_TYPE",
		"Invalid punch type. Use 'IN' or 'OUT'",
		http.StatusBadRequest,
	)
	ErrInvalidDateBound = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date bound, expected YYYY-MM-DD or RFC 3339",
		http.StatusBadRequest,
	)
)
