package domain

import "strings"

type LogType string

const (
	LogTypeIn  LogType = "IN"
	LogTypeOut LogType = "OUT"
)

// ParseLogType accepts IN or OUT in any case. An empty value means IN.
func ParseLogType(s string) (LogType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(LogTypeIn):
		return LogTypeIn, true
	case string(LogTypeOut):
		return LogTypeOut, true
	default:
		return "", false
	}
}

func (t LogType) Valid() bool {
	return t == LogTypeIn || t == LogTypeOut
}

// Action is the wording used in user facing messages: "check in".
func (t LogType) Action() string {
	if t == LogTypeOut {
		return "check out"
	}
	return "check in"
}

// Hyphenated returns "check-in" / "check-out".
func (t LogType) Hyphenated() string {
	if t == LogTypeOut {
		return "check-out"
	}
	return "check-in"
}
