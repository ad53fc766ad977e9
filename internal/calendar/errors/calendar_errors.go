package calendarerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to must be YYYY-MM-DD dates with from before to",
		http.StatusBadRequest,
	)

	ErrInvalidParticipant = apperror.New(
		apperror.CodeInvalidInput,
		"participant_id is invalid",
		http.StatusBadRequest,
	)
)
