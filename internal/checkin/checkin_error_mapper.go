package checkin

import (
	"errors"
	"time"

	checkinerrors "go-geoattend/internal/checkin/errors"
	"go-geoattend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapPersistError turns a violation of the one-per-day index into the
// same error the guard reports.
func mapPersistError(err error, logType domain.LogType, at time.Time) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "" || pgErr.ConstraintName == uniqueDayIndex {
			day, _ := DayWindow(at)
			return checkinerrors.DuplicateEvent(string(logType), day)
		}
	}
	return err
}
