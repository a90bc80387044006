package rbacerrors

import (
	"net/http"

	"odyssey-hcm/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleNameTaken = apperror.New(
		apperror.CodeConflict,
		"A role with that name already exists",
		http.StatusConflict,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role ID",
		http.StatusBadRequest,
	)
)
