package employeeerrors

import (
	"net/http"

	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
)

var (
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrConflict = apperror.New(
		apperror.CodeConflict,
		"Username or email is already taken",
		http.StatusConflict,
	)

	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"Joining date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
