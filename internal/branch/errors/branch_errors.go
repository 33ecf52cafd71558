package brancherrors

import (
	"fmt"
	"go-geoattend/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingBranch = apperror.New(
		apperror.CodeMissingBranch,
		"Employee has no branch assigned. Please assign a branch to the employee.",
		http.StatusUnprocessableEntity,
	)
	ErrBranchNotFound = apperror.New(
		apperror.CodeMissingBranch,
		"The branch assigned to the employee no longer exists.",
		http.StatusUnprocessableEntity,
	)
	ErrBranchNotConfigured = apperror.New(
		apperror.CodeBranchNotConfigured,
		"Branch does not have location information (latitude, longitude, or radius) configured.",
		http.StatusUnprocessableEntity,
	)
)

func BranchNotConfigured(name string) *apperror.AppError {
	return ErrBranchNotConfigured.WithMessage(fmt.Sprintf(
		"Branch %s does not have location information (latitude, longitude, or radius) configured.",
		name,
	))
}
