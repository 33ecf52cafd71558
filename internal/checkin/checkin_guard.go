package checkin

import (
	"context"
	"time"

	checkinerrors "go-geoattend/internal/checkin/errors"
	"go-geoattend/internal/domain"

	"github.com/google/uuid"
)

// Guard rejects a second event of the same type on the same UTC day. The
// unique index on employee_checkins remains the final arbiter under races.
type Guard struct {
	repo    Repository
	timeout time.Duration
}

func NewGuard(repo Repository, timeout time.Duration) *Guard {
	return &Guard{repo: repo, timeout: timeout}
}

func (g *Guard) CheckUnique(ctx context.Context, employeeID uuid.UUID, logType domain.LogType, ts time.Time) error {
	from, until := DayWindow(ts)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	exists, err := g.repo.ExistsInWindow(callCtx, employeeID.String(), logType, from, until)
	if err != nil {
		return err
	}
	if exists {
		return checkinerrors.DuplicateEvent(string(logType), from)
	}
	return nil
}
