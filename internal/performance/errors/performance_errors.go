package performanceerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Review cycle not found",
		http.StatusNotFound,
	)

	ErrCycleNotActive = apperror.New(
		apperror.CodeInvalidState,
		"Review cycle is not active",
		http.StatusBadRequest,
	)

	ErrInvalidCycleTransition = apperror.New(
		apperror.CodeInvalidState,
		"Review cycle can only move from upcoming to active to closed",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)

	ErrGoalNotFound = apperror.New(
		apperror.CodeNotFound,
		"Goal not found",
		http.StatusNotFound,
	)

	ErrGoalArchived = apperror.New(
		apperror.CodeInvalidState,
		"Archived goals cannot be updated",
		http.StatusBadRequest,
	)

	ErrNotGoalAssignee = apperror.New(
		apperror.CodeForbidden,
		"Only assignees can update this goal",
		http.StatusForbidden,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrNoEmployeeProfile = apperror.New(
		apperror.CodeForbidden,
		"Current user has no employee profile",
		http.StatusForbidden,
	)

	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Performance review not found",
		http.StatusNotFound,
	)

	ErrReviewNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"Review cycle is closed; the review can no longer be changed",
		http.StatusBadRequest,
	)

	ErrInvalidReviewTransition = apperror.New(
		apperror.CodeInvalidState,
		"Review is not in the stage required for this step",
		http.StatusBadRequest,
	)

	ErrNotReviewOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the reviewed employee can submit the self review",
		http.StatusForbidden,
	)

	ErrNotReportingManager = apperror.New(
		apperror.CodeForbidden,
		"Only the employee's reporting manager can submit this review",
		http.StatusForbidden,
	)

	ErrHRRoleRequired = apperror.New(
		apperror.CodeForbidden,
		"Only HR or admin can perform this step",
		http.StatusForbidden,
	)

	ErrUnknownGoal = apperror.New(
		apperror.CodeInvalidInput,
		"Goal is not part of this review",
		http.StatusBadRequest,
	)
)
