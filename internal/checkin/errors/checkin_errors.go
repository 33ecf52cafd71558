package checkinerrors

import (
	"fmt"
	"net/http"
	"time"

	"go-geoattend/internal/shared/apperror"
)

var (
	ErrInvalidLogType = apperror.New(
		apperror.CodeInvalidLogType,
		"log_type must be 'IN' or 'OUT'.",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidTimestamp,
		"Invalid timestamp format. Use ISO 8601 format.",
		http.StatusBadRequest,
	)
	ErrDuplicateEvent = apperror.New(
		apperror.CodeDuplicateEvent,
		"Duplicate check-in found for this timestamp. Please try again.",
		http.StatusConflict,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid start_date format. Use ISO 8601 format or YYYY-MM-DD.",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid end_date format. Use ISO 8601 format or YYYY-MM-DD.",
		http.StatusBadRequest,
	)
	ErrInvalidExportFormat = apperror.New(
		apperror.CodeInvalidInput,
		"format must be 'xlsx' or 'pdf'.",
		http.StatusBadRequest,
	)
)

// DuplicateEvent names the day that already holds an event of this type.
func DuplicateEvent(logType string, day time.Time) *apperror.AppError {
	date := day.Format("2006-01-02")
	action := "check-in"
	if logType == "OUT" {
		action = "check-out"
	}
	return ErrDuplicateEvent.
		WithMessage(fmt.Sprintf("A %s has already been recorded for %s.", action, date)).
		WithDetails(map[string]string{"date": date, "log_type": logType})
}
