package employeeerrors

import (
	"go-geoattend/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeEmployeeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeEmployeeInactive,
		"Employee is not active",
		http.StatusForbidden,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeRefMissing = apperror.New(
		apperror.CodeEmployeeNotFound,
		"No employee is linked to the current user",
		http.StatusNotFound,
	)
)
