package tokenerrors

import (
	"net/http"

	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
)

// All token failures are 401 to callers; the distinct codes exist for
// diagnostics and logging, not for client branching.
var (
	ErrExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrBadSignature = apperror.New(
		"BAD_SIGNATURE",
		"Token signature is invalid",
		http.StatusUnauthorized,
	)
	ErrMalformed = apperror.New(
		"TOKEN_MALFORMED",
		"Token is malformed",
		http.StatusUnauthorized,
	)
	ErrWrongAudience = apperror.New(
		"WRONG_AUDIENCE",
		"Token was not issued for this service",
		http.StatusUnauthorized,
	)
	ErrInvalid = apperror.New(
		"INVALID_TOKEN",
		"Token is invalid",
		http.StatusUnauthorized,
	)
)
