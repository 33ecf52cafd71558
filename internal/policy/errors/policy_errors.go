package policyerrors

import (
	"go-geoattend/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingCompany = apperror.New(
		apperror.CodeMissingCompany,
		"Employee has no company assigned.",
		http.StatusUnprocessableEntity,
	)
	ErrMissingDepartmentForDepartment = apperror.New(
		apperror.CodeMissingDepartment,
		"Company setting requires Department settings, but Employee has no Department assigned.",
		http.StatusUnprocessableEntity,
	)
	ErrMissingDepartmentForProject = apperror.New(
		apperror.CodeMissingDepartment,
		"Company setting requires Project settings, but Employee has no Department assigned.",
		http.StatusUnprocessableEntity,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeMissingDepartment,
		"The Department assigned to the Employee no longer exists.",
		http.StatusUnprocessableEntity,
	)
	ErrMissingProject = apperror.New(
		apperror.CodeMissingProject,
		"Company setting requires Project settings, but Department has no linked Project.",
		http.StatusUnprocessableEntity,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeMissingProject,
		"The Project linked to the Department no longer exists.",
		http.StatusUnprocessableEntity,
	)
	ErrDepartmentPolicyNotConfigured = apperror.New(
		apperror.CodePolicyNotConfigured,
		"Company setting requires Department settings, but Department has no validation settings configured. Please configure settings in Department.",
		http.StatusUnprocessableEntity,
	)
	ErrProjectPolicyNotConfigured = apperror.New(
		apperror.CodePolicyNotConfigured,
		"Company setting requires Project settings, but linked Project has no validation settings configured. Please configure settings in Project.",
		http.StatusUnprocessableEntity,
	)
)
