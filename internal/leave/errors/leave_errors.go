package leaveerrors

import (
	"net/http"

	"github.com/Sumedhatongle/employee-management-system/internal/shared/apperror"
)

var (
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type. Use 'Casual', 'Sick' or 'Other'",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status filter. Use 'Pending', 'Approved', 'Rejected' or 'All'",
		http.StatusBadRequest,
	)

	ErrInvalidRange = apperror.New(
		"INVALID_RANGE",
		"Leave must start today or later and end on or after its start date",
		http.StatusBadRequest,
	)

	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)

	// ErrNotPending covers both already-decided requests and a lost race
	// between two reviewers; either way the decision stands.
	ErrNotPending = apperror.New(
		apperror.CodeNotPending,
		"Leave request has already been decided",
		http.StatusConflict,
	)
)
