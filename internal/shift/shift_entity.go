package shift

import (
	"time"

	"github.com/google/uuid"
)

const AssignmentStatusActive = "ACTIVE"

// Type is a named shift. StartTime and EndTime are wall clock values,
// "HH:MM:SS".
type Type struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	StartTime string    `gorm:"type:varchar(8);not null"`
	EndTime   string    `gorm:"type:varchar(8);not null"`
}

func (Type) TableName() string {
	return "shift_types"
}

type Assignment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShiftTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     *time.Time `gorm:"type:date"`
	Status      string     `gorm:"type:varchar(20);not null;default:ACTIVE"`
	ShiftType   *Type      `gorm:"foreignKey:ShiftTypeID;references:ID"`
}

func (Assignment) TableName() string {
	return "shift_assignments"
}
