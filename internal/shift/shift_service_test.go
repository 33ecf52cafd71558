package shift_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-geoattend/internal/shift"
	shiftMock "go-geoattend/internal/shift/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 10, 16, hour, min, 0, 0, time.UTC)
}

func TestWindow(t *testing.T) {
	t.Run("day shift", func(t *testing.T) {
		info, ok := shift.Window(&shift.Type{Name: "Morning", StartTime: "08:00:00", EndTime: "17:00:00"}, at(7, 55))

		assert.True(t, ok)
		assert.Equal(t, "Morning", info.Name)
		assert.Equal(t, at(8, 0), info.Start)
		assert.Equal(t, at(17, 0), info.End)
	})

	t.Run("overnight rolls end to next day", func(t *testing.T) {
		info, ok := shift.Window(&shift.Type{Name: "Night", StartTime: "22:00", EndTime: "06:00"}, at(21, 50))

		assert.True(t, ok)
		assert.Equal(t, at(22, 0), info.Start)
		assert.Equal(t, at(6, 0).Add(24*time.Hour), info.End)
	})

	t.Run("early morning belongs to previous night", func(t *testing.T) {
		info, ok := shift.Window(&shift.Type{Name: "Night", StartTime: "22:00:00", EndTime: "06:00:00"}, at(5, 30))

		assert.True(t, ok)
		assert.Equal(t, at(22, 0).Add(-24*time.Hour), info.Start)
		assert.Equal(t, at(6, 0), info.End)
	})

	t.Run("malformed", func(t *testing.T) {
		_, ok := shift.Window(&shift.Type{StartTime: "8am", EndTime: "17:00"}, at(8, 0))
		assert.False(t, ok)
	})
}

func TestShiftService_Resolve(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	setup := func(t *testing.T) (shift.Service, *shiftMock.MockRepository) {
		ctrl := gomock.NewController(t)
		repo := shiftMock.NewMockRepository(ctrl)
		return shift.NewService(repo), repo
	}

	t.Run("assignment found", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveAssignment(gomock.Any(), employeeID.String(), at(9, 0)).Return(&shift.Assignment{
			ShiftType: &shift.Type{Name: "Morning", StartTime: "08:00:00", EndTime: "17:00:00"},
		}, nil)

		info, err := svc.Resolve(ctx, employeeID, at(9, 0))

		assert.NoError(t, err)
		assert.Equal(t, "Morning", info.Name)
	})

	t.Run("no assignment", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		info, err := svc.Resolve(ctx, employeeID, at(9, 0))

		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("malformed shift type is ignored", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(&shift.Assignment{
			ShiftType: &shift.Type{StartTime: "", EndTime: ""},
		}, nil)

		info, err := svc.Resolve(ctx, employeeID, at(9, 0))

		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))

		_, err := svc.Resolve(ctx, employeeID, at(9, 0))

		assert.EqualError(t, err, "conn reset")
	})
}
