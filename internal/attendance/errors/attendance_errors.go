package attendanceerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)

	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"Already checked in for today",
		http.StatusBadRequest,
	)

	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"No check-in found for today",
		http.StatusBadRequest,
	)

	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"Already checked out for today",
		http.StatusBadRequest,
	)

	ErrLocked = apperror.New(
		apperror.CodeInvalidState,
		"Attendance for this day is locked",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance status is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Check-out must be after check-in",
		http.StatusBadRequest,
	)

	ErrNoEmployeeProfile = apperror.New(
		apperror.CodeForbidden,
		"Current user has no employee profile",
		http.StatusForbidden,
	)
)
