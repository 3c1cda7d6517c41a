package apperror

import "fmt"

// AppError is the error currency between services and the HTTP boundary.
// Services return it (or sentinels built from it); handlers map it to a
// response envelope via ToHTTP.
type AppError struct {
	Code       string // stable machine-readable kind, e.g. NOT_PENDING
	Message    string // client-safe message
	HTTPStatus int
	Err        error // wrapped cause, never sent to clients
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches an internal cause to a client-facing error.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
