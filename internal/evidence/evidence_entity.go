package evidence

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindLocation  Kind = "location"
	KindBiometric Kind = "biometric"
)

func (k Kind) Valid() bool {
	return k == KindLocation || k == KindBiometric
}

// Label is the wording used in messages: "Location photo".
func (k Kind) Label() string {
	if k == KindBiometric {
		return "Client biometric photo"
	}
	return "Location photo"
}

type File struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;index"`
	Kind        Kind      `gorm:"type:varchar(20);not null"`
	FileName    string    `gorm:"not null"`
	FileURL     string    `gorm:"not null"`
	ContentType string    `gorm:"type:varchar(50)"`
	SizeBytes   int64
	StoragePath string
	CheckinID   *uuid.UUID `gorm:"type:uuid;index"`
	AttachedAt  *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (File) TableName() string {
	return "evidence_files"
}
