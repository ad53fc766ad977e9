package appraisalerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appraisal cycle not found",
		http.StatusNotFound,
	)

	ErrReviewCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Linked review cycle not found",
		http.StatusNotFound,
	)

	ErrCycleAlreadyLinked = apperror.Duplicate(
		"An appraisal cycle already exists for this review cycle",
	)

	ErrCycleNotActive = apperror.New(
		apperror.CodeInvalidState,
		"Appraisal cycle is not active",
		http.StatusBadRequest,
	)

	ErrInvalidCycleTransition = apperror.New(
		apperror.CodeInvalidState,
		"Appraisal cycle can only move from draft to active to closed",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidIncrement = apperror.New(
		apperror.CodeInvalidInput,
		"Increment value must be a non-negative amount",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrNoFinalizedReview = apperror.New(
		apperror.CodeInvalidState,
		"Employee has no finalized performance review for this cycle",
		http.StatusBadRequest,
	)

	ErrDuplicateProposal = apperror.Duplicate(
		"An increment has already been proposed for this employee in this cycle",
	)

	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appraisal record not found",
		http.StatusNotFound,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Only proposed appraisals can be approved or rejected",
		http.StatusBadRequest,
	)

	ErrRejectionReasonRequired = apperror.RequiredField("Reason")
)
