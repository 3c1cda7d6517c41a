package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is what the response layer writes. Details stays nil for
// anything that is not a validation problem.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps a service error to its boundary representation. Anything that
// is not an *AppError is treated as an internal fault and sanitized: the
// caller logs the original, the client only ever sees the generic 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
