package geofence_test

import (
	"errors"
	"testing"

	"go-geoattend/internal/branch"
	brancherrors "go-geoattend/internal/branch/errors"
	"go-geoattend/internal/domain"
	"go-geoattend/internal/geo"
	"go-geoattend/internal/geofence"
	"go-geoattend/internal/policy"
	"go-geoattend/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

// metersPerDegreeLat is the haversine distance of one degree along a meridian.
const metersPerDegreeLat = 111194.92664455873

var fence = branch.Geofence{Latitude: 0, Longitude: 0, RadiusMeters: 50}

func northOf(meters float64) (geo.Coordinate, geo.Coordinate) {
	return geo.NewCoordinate(meters / metersPerDegreeLat), geo.NewCoordinate(0)
}

func TestApplies(t *testing.T) {
	assert.True(t, geofence.Applies(domain.LogTypeIn, policy.AttendancePolicy{}))
	assert.False(t, geofence.Applies(domain.LogTypeOut, policy.AttendancePolicy{}))
	assert.True(t, geofence.Applies(domain.LogTypeOut, policy.AttendancePolicy{RequireLocationOnCheckOut: true}))
}

func TestValidate(t *testing.T) {
	t.Run("inside", func(t *testing.T) {
		lat, lon := northOf(10)

		d, err := geofence.Validate(lat, lon, fence, domain.LogTypeIn)

		assert.NoError(t, err)
		assert.InDelta(t, 10, d, 0.01)
	})

	t.Run("exactly on the boundary is accepted", func(t *testing.T) {
		atBoundary := branch.Geofence{Latitude: 0, Longitude: 0, RadiusMeters: geo.Distance(0, 0, 0.0004, 0)}
		lat, lon := geo.NewCoordinate(0.0004), geo.NewCoordinate(0)

		d, err := geofence.Validate(lat, lon, atBoundary, domain.LogTypeIn)

		assert.NoError(t, err)
		assert.Equal(t, atBoundary.RadiusMeters, d)
	})

	t.Run("just outside reports exact distance", func(t *testing.T) {
		lat, lon := northOf(52)

		d, err := geofence.Validate(lat, lon, fence, domain.LogTypeIn)

		assert.ErrorIs(t, err, geofence.ErrGeofenceExceeded)
		assert.InDelta(t, 52, d, 0.01)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		details := appErr.Details.(geofence.ExceededDetails)
		assert.InDelta(t, 52, details.DistanceMeters, 0.01)
		assert.Equal(t, 50.0, details.RadiusMeters)
		assert.Equal(t, "check in", details.Action)
		assert.Equal(t, "You are 52.00 meters away from the branch location. Please move within 50 meters to check in.", appErr.Message)
	})

	t.Run("a few millimeters outside keeps the measured distance", func(t *testing.T) {
		lat, lon := northOf(50.003)
		measured := geo.Distance(0, 0, 50.003/metersPerDegreeLat, 0)

		d, err := geofence.Validate(lat, lon, fence, domain.LogTypeIn)

		assert.ErrorIs(t, err, geofence.ErrGeofenceExceeded)
		assert.Equal(t, measured, d)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		details := appErr.Details.(geofence.ExceededDetails)
		assert.Equal(t, measured, details.DistanceMeters)
		assert.Greater(t, details.DistanceMeters, details.RadiusMeters)
		assert.Contains(t, appErr.Message, "You are 50.00 meters away")
	})

	t.Run("fractional radius is printed to centimeters", func(t *testing.T) {
		odd := branch.Geofence{Latitude: 0, Longitude: 0, RadiusMeters: 44.47697065782349}
		lat, lon := northOf(60)

		_, err := geofence.Validate(lat, lon, odd, domain.LogTypeOut)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "You are 60.00 meters away from the branch location. Please move within 44.48 meters to check out.", appErr.Message)
		assert.Equal(t, 44.47697065782349, appErr.Details.(geofence.ExceededDetails).RadiusMeters)
	})

	t.Run("check out wording", func(t *testing.T) {
		lat, lon := northOf(80)

		_, err := geofence.Validate(lat, lon, fence, domain.LogTypeOut)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Message, "to check out.")
	})

	t.Run("missing coordinate", func(t *testing.T) {
		_, err := geofence.Validate(geo.NewCoordinate(1), geo.Coordinate{}, fence, domain.LogTypeIn)

		assert.ErrorIs(t, err, geofence.ErrMissingLocation)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := geofence.Validate(geo.NewCoordinate(95), geo.NewCoordinate(0), fence, domain.LogTypeIn)

		assert.ErrorIs(t, err, geofence.ErrInvalidCoordinates)
	})

	t.Run("not numeric", func(t *testing.T) {
		var lat geo.Coordinate
		assert.NoError(t, lat.UnmarshalJSON([]byte(`"abc"`)))

		_, err := geofence.Validate(lat, geo.NewCoordinate(0), fence, domain.LogTypeIn)

		assert.ErrorIs(t, err, geofence.ErrInvalidCoordinates)
	})

	t.Run("branch without radius", func(t *testing.T) {
		lat, lon := northOf(1)

		_, err := geofence.Validate(lat, lon, branch.Geofence{Latitude: 0, Longitude: 0}, domain.LogTypeIn)

		assert.ErrorIs(t, err, brancherrors.ErrBranchNotConfigured)
	})
}
