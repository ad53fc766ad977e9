package designationerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrDesignationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Designation not found",
		http.StatusNotFound,
	)

	ErrDesignationNameExists = apperror.New(
		apperror.CodeDuplicate,
		"Designation with the same name already exists",
		http.StatusBadRequest,
	)

	ErrDesignationHasActiveEmployees = apperror.New(
		apperror.CodeInvalidState,
		"Designation is still assigned to active employees",
		http.StatusBadRequest,
	)

	ErrDesignationAlreadyInactive = apperror.New(
		apperror.CodeInvalidState,
		"Designation is already inactive",
		http.StatusBadRequest,
	)
)
