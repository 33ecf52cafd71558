package checkin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-geoattend/internal/checkin"
	checkinerrors "go-geoattend/internal/checkin/errors"
	checkinMock "go-geoattend/internal/checkin/mock"
	"go-geoattend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGuard_CheckUnique(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	ts := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	until := from.Add(24 * time.Hour)

	t.Run("free day", func(t *testing.T) {
		repo := checkinMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().ExistsInWindow(gomock.Any(), empID.String(), domain.LogTypeOut, from, until).Return(false, nil)

		assert.NoError(t, checkin.NewGuard(repo, time.Second).CheckUnique(ctx, empID, domain.LogTypeOut, ts))
	})

	t.Run("already recorded", func(t *testing.T) {
		repo := checkinMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().ExistsInWindow(gomock.Any(), empID.String(), domain.LogTypeOut, from, until).Return(true, nil)

		err := checkin.NewGuard(repo, time.Second).CheckUnique(ctx, empID, domain.LogTypeOut, ts)

		assert.ErrorIs(t, err, checkinerrors.ErrDuplicateEvent)
		assert.EqualError(t, err, "A check-out has already been recorded for 2026-03-02.")
	})

	t.Run("lookup failure passes through", func(t *testing.T) {
		repo := checkinMock.NewMockRepository(gomock.NewController(t))
		boom := errors.New("statement timeout")
		repo.EXPECT().ExistsInWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)

		err := checkin.NewGuard(repo, time.Second).CheckUnique(ctx, empID, domain.LogTypeIn, ts)

		assert.Same(t, boom, err)
	})
}
