package autherrors

import (
	"net/http"

	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials covers unknown username, wrong password and
	// deactivated accounts alike, so callers cannot enumerate users.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrUserConflict = apperror.New(
		apperror.CodeConflict,
		"Username or email already exists",
		http.StatusConflict,
	)
)
