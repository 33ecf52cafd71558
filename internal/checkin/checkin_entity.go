package checkin

import (
	"time"

	"go-geoattend/internal/domain"

	"github.com/google/uuid"
)

// TimeLayout is how event and shift times travel over the wire: naive UTC,
// second precision.
const TimeLayout = "2006-01-02T15:04:05"

const uniqueDayIndex = "uq_employee_checkin_day"

type Checkin struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number            string         `gorm:"type:varchar(30);not null"`
	CompanyID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	EmployeeID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_employee_checkin_day,priority:1"`
	EmployeeName      string         `gorm:"type:varchar(150)"`
	LogType           domain.LogType `gorm:"type:varchar(3);not null;uniqueIndex:uq_employee_checkin_day,priority:2"`
	Time              time.Time      `gorm:"type:timestamp;not null;index"`
	EventDate         time.Time      `gorm:"type:date;not null;uniqueIndex:uq_employee_checkin_day,priority:3"`
	Latitude          *float64
	Longitude         *float64
	DeviceID          *string    `gorm:"type:varchar(100)"`
	Notes             *string    `gorm:"type:text"`
	ShiftName         *string    `gorm:"type:varchar(100)"`
	ShiftStart        *time.Time `gorm:"type:timestamp"`
	ShiftEnd          *time.Time `gorm:"type:timestamp"`
	DistanceMeters    *float64
	PolicySource      string     `gorm:"type:varchar(20)"`
	PolicySourceID    *uuid.UUID `gorm:"type:uuid"`
	LocationPhotoID   *uuid.UUID `gorm:"type:uuid"`
	LocationPhotoURL  *string
	BiometricPhotoID  *uuid.UUID `gorm:"type:uuid"`
	BiometricPhotoURL *string
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (Checkin) TableName() string {
	return "employee_checkins"
}

// Photos are the evidence links written back after attachment.
type Photos struct {
	LocationID   *uuid.UUID
	LocationURL  *string
	BiometricID  *uuid.UUID
	BiometricURL *string
}

func (p Photos) Empty() bool {
	return p.LocationID == nil && p.BiometricID == nil
}

// DayWindow returns the UTC calendar day containing t as [start, end).
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
