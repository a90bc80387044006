package leaveerrors

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
	ErrInvalidPolicyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid policy id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave policy not found",
		http.StatusNotFound,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	// ErrRequestValidation carries the field-keyed violation map in Details
	// so the UI can show every problem at once.
	ErrRequestValidation = apperror.New(
		apperror.CodeInvalidInput,
		"leave request validation failed",
		http.StatusBadRequest,
	)
	// Domain conflict per policy: the mutation is refused, never clamped.
	ErrInsufficientBalance = apperror.New(
		apperror.CodeConflict,
		"insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave request is not pending",
		http.StatusBadRequest,
	)
	ErrRejectCommentsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"comments are required when rejecting",
		http.StatusBadRequest,
	)
	ErrNotRequestOwner = apperror.New(
		apperror.CodeForbidden,
		"only the requester may cancel this leave request",
		http.StatusForbidden,
	)
	ErrNoApproverConfigured = apperror.New(
		apperror.CodeInvalidState,
		"employee has no manager configured to approve this request",
		http.StatusBadRequest,
	)
	ErrPolicyInUse = apperror.New(
		apperror.CodeInvalidState,
		"policy is referenced by leave requests and can only be edited by an HR admin",
		http.StatusBadRequest,
	)
)
