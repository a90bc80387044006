package workflowerrors

import (
	"net/http"

	"odyssey-hcm/internal/shared/apperror"
)

var (
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval workflow not found",
		http.StatusNotFound,
	)
	ErrWorkflowNotActive = apperror.New(
		apperror.CodeInvalidState,
		"approval workflow is not active",
		http.StatusBadRequest,
	)
	ErrWorkflowAlreadyActive = apperror.New(
		apperror.CodeConflict,
		"subject already has an active approval workflow",
		http.StatusConflict,
	)
	ErrNoApprovers = apperror.New(
		apperror.CodeInvalidInput,
		"at least one approver is required",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"decision must be approve or reject",
		http.StatusBadRequest,
	)
	ErrNotCurrentApprover = apperror.New(
		apperror.CodeForbidden,
		"actor is not the approver of the current pending level",
		http.StatusForbidden,
	)
)
