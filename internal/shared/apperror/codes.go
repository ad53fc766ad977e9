package apperror

// Codes surfaced in the response envelope's "code" field.
const (
	CodeInvalidInput = "INVALID_INPUT" // validation
	CodeInvalidState = "INVALID_STATE" // state conflict, e.g. approving a locked payroll
	CodeDuplicate    = "DUPLICATE"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeRateLimited  = "RATE_LIMITED"

	CodeInternalError = "INTERNAL_ERROR"
)
