package branch

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_repo.go -destination=mock/branch_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Branch, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}
