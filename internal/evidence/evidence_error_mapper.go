package evidence

import (
	"errors"

	evidenceerrors "go-geoattend/internal/evidence/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return evidenceerrors.ErrEvidenceNotFound
	}
	return err
}
