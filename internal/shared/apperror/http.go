package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP flattens any error into the envelope fields. Unknown errors
// never leak their text to the client.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return HTTPError{
			Status:  http.StatusInternalServerError,
			Code:    CodeInternalError,
			Message: ErrInternal.Message,
		}
	}

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return HTTPError{
		Status:  status,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: details(appErr),
	}
}

func details(e *AppError) any {
	if e.Step == "" && !e.Retryable {
		return e.Details
	}

	out := map[string]any{}
	if e.Step != "" {
		out["step"] = e.Step
	}
	if e.Retryable {
		out["retryable"] = true
	}
	if e.Details != nil {
		out["info"] = e.Details
	}
	return out
}
