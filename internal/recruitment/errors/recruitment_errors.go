package recruitmenterrors

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
	ErrInvalidRequisitionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid requisition id",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid position id",
		http.StatusBadRequest,
	)
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application id",
		http.StatusBadRequest,
	)
	ErrRequisitionNotFound = apperror.New(
		apperror.CodeNotFound,
		"job requisition not found",
		http.StatusNotFound,
	)
	ErrOfferNotFound = apperror.New(
		apperror.CodeNotFound,
		"offer not found",
		http.StatusNotFound,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"application not found",
		http.StatusNotFound,
	)
	ErrRequisitionNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"requisition is not in draft",
		http.StatusBadRequest,
	)
	ErrRequisitionNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"requisition is not approved",
		http.StatusBadRequest,
	)
	ErrOfferNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"offer is not in draft",
		http.StatusBadRequest,
	)
	ErrDuplicateApplication = apperror.New(
		apperror.CodeConflict,
		"candidate already applied to this requisition",
		http.StatusConflict,
	)
	ErrUnknownStage = apperror.New(
		apperror.CodeInvalidInput,
		"unknown recruitment stage",
		http.StatusBadRequest,
	)
	// ErrStageNotAllowed carries from/to in Details.
	ErrStageNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"stage transition is not allowed",
		http.StatusBadRequest,
	)
	ErrNoApprovers = apperror.New(
		apperror.CodeInvalidInput,
		"at least one approver is required",
		http.StatusBadRequest,
	)
	ErrEmptyBulkTransition = apperror.New(
		apperror.CodeInvalidInput,
		"bulk transition needs at least one application id",
		http.StatusBadRequest,
	)
)
