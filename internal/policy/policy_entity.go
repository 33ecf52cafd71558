package policy

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                  string    `gorm:"type:varchar(150);not null"`
	UseDepartmentSettings *bool
	CreatedAt             time.Time      `gorm:"not null;default:now()"`
	UpdatedAt             time.Time      `gorm:"not null;default:now()"`
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}

type Department struct {
	ID                        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                      string     `gorm:"size:255;not null"`
	CompanyID                 uuid.UUID  `gorm:"type:uuid;not null"`
	ProjectID                 *uuid.UUID `gorm:"type:uuid"`
	RequireLocationPhoto      *bool
	RequireBiometricPhoto     *bool
	RequireLocationOnCheckOut *bool          `gorm:"column:require_location_on_check_out"`
	CreatedAt                 time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time      `gorm:"autoUpdateTime"`
	DeletedAt                 gorm.DeletedAt `gorm:"index"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) Flags() Flags {
	return Flags{
		RequireLocationPhoto:      FlagFromNullable(d.RequireLocationPhoto),
		RequireBiometricPhoto:     FlagFromNullable(d.RequireBiometricPhoto),
		RequireLocationOnCheckOut: FlagFromNullable(d.RequireLocationOnCheckOut),
	}
}

type Project struct {
	ID                        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                      string    `gorm:"size:255;not null"`
	CompanyID                 uuid.UUID `gorm:"type:uuid;not null"`
	RequireLocationPhoto      *bool
	RequireBiometricPhoto     *bool
	RequireLocationOnCheckOut *bool          `gorm:"column:require_location_on_check_out"`
	CreatedAt                 time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                 time.Time      `gorm:"autoUpdateTime"`
	DeletedAt                 gorm.DeletedAt `gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) Flags() Flags {
	return Flags{
		RequireLocationPhoto:      FlagFromNullable(p.RequireLocationPhoto),
		RequireBiometricPhoto:     FlagFromNullable(p.RequireBiometricPhoto),
		RequireLocationOnCheckOut: FlagFromNullable(p.RequireLocationOnCheckOut),
	}
}
