package apperror

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// AtStep attaches the failing pipeline step to err. Domain errors keep
// their code, infrastructure failures that may heal on retry become
// DEPENDENCY_UNAVAILABLE and everything else becomes INTERNAL_ERROR.
func AtStep(step string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Step != "" {
			return appErr
		}
		return appErr.WithStep(step)
	}

	if IsTransient(err) {
		e := *ErrDependencyUnavailable
		e.Step = step
		e.Err = err
		return &e
	}

	e := *ErrInternal
	e.Step = step
	e.Err = err
	return &e
}

// IsTransient reports whether err comes from a timeout or a dropped
// connection rather than from the data itself.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection exceptions, admin shutdown, too many connections
		return strings.HasPrefix(pgErr.Code, "08") ||
			pgErr.Code == "57P01" ||
			pgErr.Code == "53300"
	}

	return false
}
