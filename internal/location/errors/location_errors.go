package locationerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrLocationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Location not found",
		http.StatusNotFound,
	)

	ErrLocationNameExists = apperror.New(
		apperror.CodeDuplicate,
		"Location with the same name already exists",
		http.StatusBadRequest,
	)

	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"Timezone must be a valid IANA zone name",
		http.StatusBadRequest,
	)

	ErrLocationHasActiveEmployees = apperror.New(
		apperror.CodeInvalidState,
		"Location still has active employees",
		http.StatusBadRequest,
	)

	ErrLocationAlreadyInactive = apperror.New(
		apperror.CodeInvalidState,
		"Location is already inactive",
		http.StatusBadRequest,
	)
)
