package performanceerrors

import (
	"net/http"

	"odyssey-hcm/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidGoalID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid goal id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrGoalNotFound = apperror.New(
		apperror.CodeNotFound,
		"goal not found",
		http.StatusNotFound,
	)
	ErrKeyResultNotFound = apperror.New(
		apperror.CodeNotFound,
		"key result not found",
		http.StatusNotFound,
	)
	ErrInvalidProgress = apperror.New(
		apperror.CodeInvalidInput,
		"progress must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrStaleProgress = apperror.New(
		apperror.CodeConflict,
		"previous progress does not match the current value",
		http.StatusConflict,
	)
	ErrSelfParent = apperror.New(
		apperror.CodeInvalidInput,
		"a goal cannot be its own parent",
		http.StatusBadRequest,
	)
	ErrParentCycle = apperror.New(
		apperror.CodeInvalidState,
		"parent link would create a cycle",
		http.StatusBadRequest,
	)
	ErrInvalidWeight = apperror.New(
		apperror.CodeInvalidInput,
		"key result weight must be positive",
		http.StatusBadRequest,
	)
)
