package evidence

import (
	"context"
	"time"

	evidenceerrors "go-geoattend/internal/evidence/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=evidence_repo.go -destination=mock/evidence_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, f *File) error
	FindByID(ctx context.Context, id string) (*File, error)
	// AttachToCheckin links the file to an event. Linking a file to the
	// event it is already linked to is a no-op.
	AttachToCheckin(ctx context.Context, id, checkinID uuid.UUID, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, f *File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*File, error) {
	var f File
	err := r.db.WithContext(ctx).
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) AttachToCheckin(ctx context.Context, id, checkinID uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&File{}).
		Where("id = ?", id).
		Where("checkin_id IS NULL OR checkin_id = ?", checkinID).
		Updates(map[string]interface{}{
			"checkin_id":  checkinID,
			"attached_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return evidenceerrors.ErrAlreadyAttached
	}
	return nil
}
