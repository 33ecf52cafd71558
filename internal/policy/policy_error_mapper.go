package policy

import (
	"errors"

	"go-geoattend/internal/shared/apperror"

	"gorm.io/gorm"
)

// mapNotFound turns a missing row into the given configuration error and
// leaves every other failure untouched.
func mapNotFound(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
