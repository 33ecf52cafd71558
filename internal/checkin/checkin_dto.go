package checkin

import (
	"time"

	"go-geoattend/internal/geo"

	"github.com/google/uuid"
)

// RecordEventRequest is the check-in body. UserID is filled from the
// token and identifies the employee when EmployeeID is empty.
type RecordEventRequest struct {
	EmployeeID             string         `json:"employee_id"`
	LogType                string         `json:"log_type"`
	Latitude               geo.Coordinate `json:"latitude"`
	Longitude              geo.Coordinate `json:"longitude"`
	DeviceID               *string        `json:"device_id"`
	LocationPhoto          string         `json:"location_photo"`
	LocationPhotoID        string         `json:"location_photo_id"`
	ClientBiometricPhoto   string         `json:"client_biometric_photo"`
	ClientBiometricPhotoID string         `json:"client_biometric_photo_id"`
	Timestamp              string         `json:"timestamp"`
	Notes                  *string        `json:"notes"`
	UserID                 string         `json:"-"`
	CompanyID              string         `json:"-"`
}

type RecordEventResponse struct {
	CheckinID                string   `json:"checkin_id"`
	Number                   string   `json:"number"`
	EmployeeID               string   `json:"employee_id"`
	EmployeeName             string   `json:"employee_name"`
	LogType                  string   `json:"log_type"`
	Time                     string   `json:"time"`
	Latitude                 *float64 `json:"latitude"`
	Longitude                *float64 `json:"longitude"`
	DeviceID                 *string  `json:"device_id,omitempty"`
	Shift                    *string  `json:"shift"`
	ShiftStart               *string  `json:"shift_start"`
	ShiftEnd                 *string  `json:"shift_end"`
	Status                   string   `json:"status"`
	PolicySource             string   `json:"policy_source"`
	DistanceFromBranchMeters *float64 `json:"distance_from_branch_meters,omitempty"`
	LocationPhotoURL         *string  `json:"location_photo_url,omitempty"`
	LocationPhotoID          *string  `json:"location_photo_id,omitempty"`
	ClientBiometricPhotoURL  *string  `json:"client_biometric_photo_url,omitempty"`
	ClientBiometricPhotoID   *string  `json:"client_biometric_photo_id,omitempty"`
	Warnings                 []string `json:"warnings,omitempty"`
}

type ListEventsRequest struct {
	EmployeeID string `form:"employee_id"`
	LogType    string `form:"log_type"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Limit      string `form:"limit"`
	Offset     string `form:"offset"`
	UserID     string `form:"-"`
	CompanyID  string `form:"-"`
}

type EventRecord struct {
	ID                      string   `json:"id"`
	Number                  string   `json:"number"`
	EmployeeID              string   `json:"employee_id"`
	EmployeeName            string   `json:"employee_name"`
	LogType                 string   `json:"log_type"`
	Time                    string   `json:"time"`
	Latitude                *float64 `json:"latitude"`
	Longitude               *float64 `json:"longitude"`
	DeviceID                *string  `json:"device_id"`
	Notes                   *string  `json:"notes,omitempty"`
	Shift                   *string  `json:"shift"`
	ShiftStart              *string  `json:"shift_start"`
	ShiftEnd                *string  `json:"shift_end"`
	DistanceMeters          *float64 `json:"distance_from_branch_meters,omitempty"`
	LocationPhotoURL        *string  `json:"location_photo_url"`
	LocationPhotoID         *string  `json:"location_photo_id"`
	ClientBiometricPhotoURL *string  `json:"client_biometric_photo_url"`
	ClientBiometricPhotoID  *string  `json:"client_biometric_photo_id"`
}

type ListEventsResponse struct {
	Records    []EventRecord `json:"records"`
	TotalCount int64         `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
	HasMore    bool          `json:"has_more"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(TimeLayout)
	return &v
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToRecord(c Checkin) EventRecord {
	return EventRecord{
		ID:                      c.ID.String(),
		Number:                  c.Number,
		EmployeeID:              c.EmployeeID.String(),
		EmployeeName:            c.EmployeeName,
		LogType:                 string(c.LogType),
		Time:                    c.Time.UTC().Format(TimeLayout),
		Latitude:                c.Latitude,
		Longitude:               c.Longitude,
		DeviceID:                c.DeviceID,
		Notes:                   c.Notes,
		Shift:                   c.ShiftName,
		ShiftStart:              formatTime(c.ShiftStart),
		ShiftEnd:                formatTime(c.ShiftEnd),
		DistanceMeters:          c.DistanceMeters,
		LocationPhotoURL:        c.LocationPhotoURL,
		LocationPhotoID:         uuidString(c.LocationPhotoID),
		ClientBiometricPhotoURL: c.BiometricPhotoURL,
		ClientBiometricPhotoID:  uuidString(c.BiometricPhotoID),
	}
}
