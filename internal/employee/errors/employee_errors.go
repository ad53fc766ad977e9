package employeeerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"Employee with the same email already exists",
		http.StatusBadRequest,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"Employee code already exists",
		http.StatusBadRequest,
	)
	ErrUserEmailAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"A user with the same email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid join_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrInvalidMonthlyTDS = apperror.New(
		apperror.CodeInvalidInput,
		"Monthly TDS must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrEmployeeHasHistory = apperror.New(
		apperror.CodeInvalidState,
		"Employee still has dependent records and cannot be deleted",
		http.StatusBadRequest,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeInvalidInput,
		"An employee cannot be their own manager",
		http.StatusBadRequest,
	)
)
