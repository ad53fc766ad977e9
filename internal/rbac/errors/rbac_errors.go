package rbacerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)

	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeDuplicate,
		"Role with the same name already exists",
		http.StatusBadRequest,
	)

	ErrUnknownPermission = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown permission",
		http.StatusBadRequest,
	)
)
