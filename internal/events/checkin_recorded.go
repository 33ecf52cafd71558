package events

import "time"

const (
	CheckinRecordedTopic     = "hr.attendance.checkin.recorded.v1"
	CheckinRecordedEventType = "checkin_recorded"
)

type CheckinRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	CheckinID      string    `json:"checkin_id"`
	Number         string    `json:"number"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	LogType        string    `json:"log_type"`
	Time           string    `json:"time"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	PolicySource   string    `json:"policy_source"`
	PolicySourceID string    `json:"policy_source_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
