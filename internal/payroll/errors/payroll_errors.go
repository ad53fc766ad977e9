package payrollerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll period",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrInvalidScope = apperror.New(
		apperror.CodeInvalidInput,
		"scope must be all, department or employee",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"active employee not found",
		http.StatusNotFound,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollFinalized = apperror.New(
		apperror.CodeInvalidState,
		"payroll for this period is already approved or locked",
		http.StatusBadRequest,
	)
	ErrPayrollExists = apperror.New(
		apperror.CodeDuplicate,
		"payroll already exists for this employee and period",
		http.StatusBadRequest,
	)
	ErrNoSalary = apperror.New(
		apperror.CodeInvalidState,
		"employee has no salary structure or salary",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusBadRequest,
	)
	ErrNothingToExport = apperror.New(
		apperror.CodeNotFound,
		"no payroll records for this period",
		http.StatusNotFound,
	)
)
