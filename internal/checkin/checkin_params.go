package checkin

import (
	"strconv"
	"strings"
	"time"

	checkinerrors "go-geoattend/internal/checkin/errors"
	"go-geoattend/internal/domain"

	"github.com/google/uuid"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
}

// ParseTimestamp reads a client timestamp as naive UTC with second
// precision. Offsets are applied and then dropped; an empty value means
// now.
func ParseTimestamp(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now.UTC().Truncate(time.Second), nil
	}
	t, ok := parseTime(s, timestampLayouts)
	if !ok {
		return time.Time{}, checkinerrors.ErrInvalidTimestamp
	}
	return t, nil
}

func parseTime(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), true
		}
	}
	return time.Time{}, false
}

// parseDate accepts the timestamp layouts plus a bare YYYY-MM-DD.
func parseDate(s string) (time.Time, bool) {
	return parseTime(strings.TrimSpace(s), append([]string{"2006-01-02"}, timestampLayouts...))
}

func parseLimit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return defaultListLimit
	}
	return n
}

func parseOffset(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// buildListFilter turns query parameters into a repository filter. The end
// date is inclusive: events up to the following midnight are returned.
func buildListFilter(employeeID uuid.UUID, req ListEventsRequest) (ListFilter, error) {
	f := ListFilter{
		EmployeeID: employeeID.String(),
		Limit:      parseLimit(req.Limit),
		Offset:     parseOffset(req.Offset),
	}

	if lt := strings.TrimSpace(req.LogType); lt != "" {
		logType, ok := domain.ParseLogType(lt)
		if !ok {
			return ListFilter{}, checkinerrors.ErrInvalidLogType
		}
		f.LogType = logType
	}

	if req.StartDate != "" {
		from, ok := parseDate(req.StartDate)
		if !ok {
			return ListFilter{}, checkinerrors.ErrInvalidStartDate
		}
		f.From = &from
	}
	if req.EndDate != "" {
		end, ok := parseDate(req.EndDate)
		if !ok {
			return ListFilter{}, checkinerrors.ErrInvalidEndDate
		}
		until := end.Add(24 * time.Hour)
		f.Until = &until
	}

	return f, nil
}
