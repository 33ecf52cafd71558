package policy

import (
	"context"
	"errors"

	"go-geoattend/internal/tenant"

	"gorm.io/gorm"
)

// DepartmentSettings is what the resolver needs from a department row.
type DepartmentSettings struct {
	Department Department
	Flags      Flags
}

type ProjectSettings struct {
	Project Project
	Flags   Flags
}

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type Repository interface {
	// UseDepartmentSettings reports the company switch; a missing company
	// row or NULL column reads as false.
	UseDepartmentSettings(ctx context.Context, companyID string) (bool, error)
	GetDepartmentSettings(ctx context.Context, companyID, departmentID string) (*DepartmentSettings, error)
	GetProjectSettings(ctx context.Context, companyID, projectID string) (*ProjectSettings, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UseDepartmentSettings(ctx context.Context, companyID string) (bool, error) {
	var c Company
	err := r.db.WithContext(ctx).
		Select("id", "use_department_settings").
		First(&c, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return FlagFromNullable(c.UseDepartmentSettings).Bool(), nil
}

func (r *repository) GetDepartmentSettings(ctx context.Context, companyID, departmentID string) (*DepartmentSettings, error) {
	var d Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&d, "id = ?", departmentID).Error
	if err != nil {
		return nil, err
	}
	return &DepartmentSettings{Department: d, Flags: d.Flags()}, nil
}

func (r *repository) GetProjectSettings(ctx context.Context, companyID, projectID string) (*ProjectSettings, error) {
	var p Project
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &ProjectSettings{Project: p, Flags: p.Flags()}, nil
}
