package salarystructureerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrSalaryStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"No active salary structure for this employee",
		http.StatusNotFound,
	)
	ErrActiveStructureExists = apperror.New(
		apperror.CodeDuplicate,
		"Employee already has an active salary structure",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amounts must be non-negative numbers",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveFrom = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_from format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
