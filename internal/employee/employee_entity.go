package employee

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusLeft      Status = "LEFT"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       *string    `gorm:"uniqueIndex"`
	EmployeeCode string     `gorm:"index"`
	FullName     string
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	BranchID     *uuid.UUID `gorm:"type:uuid"`
	Designation  string
	Status       Status `gorm:"type:varchar(20);default:ACTIVE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e *Employee) IsActive() bool {
	return e.Status == "" || e.Status == StatusActive
}

// Code is the human facing identifier, falling back to the uuid.
func (e *Employee) Code() string {
	if e.EmployeeCode != "" {
		return e.EmployeeCode
	}
	return e.ID.String()
}

func (e *Employee) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	return e.Code()
}

// Ref identifies the employee an attendance operation targets. EmployeeID
// wins when both are set; otherwise the employee linked to UserID is used.
// CompanyID is the caller's tenant and bounds the lookup.
type Ref struct {
	CompanyID  string
	EmployeeID string
	UserID     string
}
