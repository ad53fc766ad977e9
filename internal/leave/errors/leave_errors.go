package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrHalfDaySingleDate = apperror.New(
		apperror.CodeInvalidInput,
		"a half-day leave must start and end on the same date",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeInvalidState,
		"leave already exists in overlapping period",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidState,
		"insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeExists = apperror.New(
		apperror.CodeDuplicate,
		"leave type with the same name already exists",
		http.StatusBadRequest,
	)
	ErrLeaveTypeInactive = apperror.New(
		apperror.CodeInvalidState,
		"leave type is inactive",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrLeaveAlreadyStarted = apperror.New(
		apperror.CodeInvalidState,
		"approved leave can only be cancelled before it starts",
		http.StatusBadRequest,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"you cannot approve or reject your own leave",
		http.StatusForbidden,
	)
	ErrNotLeaveOwner = apperror.New(
		apperror.CodeForbidden,
		"you can only act on your own leave",
		http.StatusForbidden,
	)
	ErrCancelApprovedForbidden = apperror.New(
		apperror.CodeForbidden,
		"only HR, admins or managers can cancel approved leave",
		http.StatusForbidden,
	)
)
