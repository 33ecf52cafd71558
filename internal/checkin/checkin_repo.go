package checkin

import (
	"context"
	"database/sql"
	"time"

	"go-geoattend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID string
	LogType    domain.LogType
	From       *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

//go:generate mockgen -source=checkin_repo.go -destination=mock/checkin_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Checkin) error
	ExistsInWindow(ctx context.Context, employeeID string, logType domain.LogType, from, until time.Time) (bool, error)
	SetPhotos(ctx context.Context, id uuid.UUID, photos Photos) error
	List(ctx context.Context, f ListFilter) ([]Checkin, int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, c *Checkin) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) ExistsInWindow(ctx context.Context, employeeID string, logType domain.LogType, from, until time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Checkin{}).
		Where("employee_id = ?", employeeID).
		Where("log_type = ?", logType).
		Where("time >= ? AND time < ?", from, until).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SetPhotos(ctx context.Context, id uuid.UUID, photos Photos) error {
	updates := map[string]interface{}{}
	if photos.LocationID != nil {
		updates["location_photo_id"] = photos.LocationID
		updates["location_photo_url"] = photos.LocationURL
	}
	if photos.BiometricID != nil {
		updates["biometric_photo_id"] = photos.BiometricID
		updates["biometric_photo_url"] = photos.BiometricURL
	}
	if len(updates) == 0 {
		return nil
	}
	return r.conn(ctx).
		Model(&Checkin{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Checkin, int64, error) {
	var total int64
	err := r.conn(ctx).
		Model(&Checkin{}).
		Scopes(listScope(f)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []Checkin
	err = r.conn(ctx).
		Scopes(listScope(f)).
		Order("time DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&rows).Error
	return rows, total, err
}

func listScope(f ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("employee_id = ?", f.EmployeeID)
		if f.LogType != "" {
			db = db.Where("log_type = ?", f.LogType)
		}
		if f.From != nil {
			db = db.Where("time >= ?", *f.From)
		}
		if f.Until != nil {
			db = db.Where("time < ?", *f.Until)
		}
		return db
	}
}
