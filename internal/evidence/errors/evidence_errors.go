package evidenceerrors

import (
	"go-geoattend/internal/shared/apperror"
	"net/http"
)

var (
	ErrEvidenceRequired = apperror.New(
		apperror.CodeEvidenceRequired,
		"Photo evidence is required.",
		http.StatusUnprocessableEntity,
	)
	ErrEvidenceNotFound = apperror.New(
		apperror.CodeEvidenceNotFound,
		"The referenced photo does not exist.",
		http.StatusNotFound,
	)
	ErrInvalidBase64 = apperror.New(
		apperror.CodeInvalidEvidence,
		"Invalid base64 image data.",
		http.StatusBadRequest,
	)
	ErrEmptyPayload = apperror.New(
		apperror.CodeInvalidEvidence,
		"Photo payload is empty.",
		http.StatusBadRequest,
	)
	ErrPayloadTooLarge = apperror.New(
		apperror.CodeInvalidEvidence,
		"Photo exceeds the maximum allowed size.",
		http.StatusBadRequest,
	)
	ErrUnsupportedImage = apperror.New(
		apperror.CodeInvalidEvidence,
		"Photo must be a JPEG, PNG or WEBP image.",
		http.StatusBadRequest,
	)
	ErrWrongKind = apperror.New(
		apperror.CodeInvalidEvidence,
		"The referenced photo was uploaded for a different purpose.",
		http.StatusBadRequest,
	)
	ErrAlreadyAttached = apperror.New(
		apperror.CodeInvalidEvidence,
		"The referenced photo is already attached to another attendance event.",
		http.StatusConflict,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"kind must be 'location' or 'biometric'.",
		http.StatusBadRequest,
	)
)
