package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeNotPending         = "NOT_PENDING"
	CodeNoEmployeeRecord   = "NO_EMPLOYEE_RECORD"

	// Server errors (5xx)
	CodeInternalError = "INTERNAL_ERROR"
)
