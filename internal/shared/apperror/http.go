package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport view of an error, ready for the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

var exposeDetails bool

// ExposeDetails toggles whether wrapped causes are written to the envelope.
// Only enabled in development.
func ExposeDetails(enabled bool) {
	exposeDetails = enabled
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		out := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if out.Status == 0 {
			out.Status = http.StatusInternalServerError
		}
		if exposeDetails && appErr.Err != nil {
			out.Details = appErr.Err.Error()
		}
		return out
	}

	out := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
	if exposeDetails && err != nil {
		out.Details = err.Error()
	}
	return out
}
