package shift

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	FindActiveAssignment(ctx context.Context, employeeID string, date time.Time) (*Assignment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindActiveAssignment returns the latest active assignment covering date.
func (r *repository) FindActiveAssignment(ctx context.Context, employeeID string, date time.Time) (*Assignment, error) {
	day := date.Format("2006-01-02")

	var a Assignment
	err := r.db.WithContext(ctx).
		Preload("ShiftType").
		Where("employee_id = ?", employeeID).
		Where("status = ?", AssignmentStatusActive).
		Where("start_date <= ?", day).
		Where("end_date IS NULL OR end_date >= ?", day).
		Order("start_date DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
