package departmenterrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrDepartmentNameExists = apperror.New(
		apperror.CodeDuplicate,
		"Department with the same name already exists",
		http.StatusBadRequest,
	)

	ErrDepartmentHasActiveEmployees = apperror.New(
		apperror.CodeInvalidState,
		"Department still has active employees",
		http.StatusBadRequest,
	)

	ErrDepartmentAlreadyInactive = apperror.New(
		apperror.CodeInvalidState,
		"Department is already inactive",
		http.StatusBadRequest,
	)
)
