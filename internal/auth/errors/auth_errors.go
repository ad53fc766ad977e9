package autherrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)

	ErrMissingClaim = apperror.New(
		apperror.CodeUnauthorized,
		"Token is missing required claims",
		http.StatusUnauthorized,
	)
)
