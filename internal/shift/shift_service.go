package shift

import (
	"context"
	"errors"
	"time"

	"go-geoattend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Info is the shift window an attendance event falls in. Start and End
// are UTC wall clock times without zone semantics, like the event time.
type Info struct {
	Name  string
	Start time.Time
	End   time.Time
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	// Resolve returns nil when the employee has no active assignment.
	Resolve(ctx context.Context, employeeID uuid.UUID, at time.Time) (*Info, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Resolve(ctx context.Context, employeeID uuid.UUID, at time.Time) (*Info, error) {
	a, err := s.repo.FindActiveAssignment(ctx, employeeID.String(), at)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if a.ShiftType == nil {
		return nil, nil
	}

	info, ok := Window(a.ShiftType, at)
	if !ok {
		s.logger.Warn("shift type has malformed times",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("shift_type_id", a.ShiftTypeID.String()),
			zap.String("start_time", a.ShiftType.StartTime),
			zap.String("end_time", a.ShiftType.EndTime),
		)
		return nil, nil
	}
	return info, nil
}

// Window places the shift type on the calendar around at. An end earlier
// than the start rolls over to the next day; an early morning event of an
// overnight shift belongs to the window that began the previous day.
func Window(t *Type, at time.Time) (*Info, bool) {
	start, ok := parseClock(t.StartTime)
	if !ok {
		return nil, false
	}
	end, ok := parseClock(t.EndTime)
	if !ok {
		return nil, false
	}

	day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	info := &Info{
		Name:  t.Name,
		Start: day.Add(start),
		End:   day.Add(end),
	}
	if end <= start {
		info.End = info.End.Add(24 * time.Hour)
		if at.Before(info.Start) && !at.After(info.End.Add(-24*time.Hour)) {
			info.Start = info.Start.Add(-24 * time.Hour)
			info.End = info.End.Add(-24 * time.Hour)
		}
	}
	return info, true
}

func parseClock(s string) (time.Duration, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}
