package geofence

import (
	"fmt"
	"math"
	"net/http"

	"go-geoattend/internal/branch"
	brancherrors "go-geoattend/internal/branch/errors"
	"go-geoattend/internal/domain"
	"go-geoattend/internal/geo"
	"go-geoattend/internal/policy"
	"go-geoattend/internal/shared/apperror"
)

var (
	ErrMissingLocation = apperror.New(
		apperror.CodeMissingLocation,
		"Latitude and longitude are required for check-in/check-out.",
		http.StatusBadRequest,
	)
	ErrInvalidCoordinates = apperror.New(
		apperror.CodeInvalidCoordinates,
		"Invalid latitude or longitude values.",
		http.StatusBadRequest,
	)
	ErrGeofenceExceeded = apperror.New(
		apperror.CodeGeofenceExceeded,
		"You are outside the allowed branch radius.",
		http.StatusUnprocessableEntity,
	)
)

// ExceededDetails is attached to GEOFENCE_EXCEEDED so clients can render
// a "move closer" prompt. DistanceMeters is the measured distance; only the
// message text is rounded.
type ExceededDetails struct {
	DistanceMeters float64 `json:"distance_meters"`
	RadiusMeters   float64 `json:"radius_meters"`
	Action         string  `json:"action"`
}

// Applies reports whether the location check runs for this event: always
// for IN, for OUT only when the policy asks for it.
func Applies(logType domain.LogType, pol policy.AttendancePolicy) bool {
	if logType == domain.LogTypeOut {
		return pol.RequireLocationOnCheckOut
	}
	return true
}

// Validate returns the distance from the branch in meters. A point exactly
// on the boundary is accepted.
func Validate(lat, lon geo.Coordinate, fence branch.Geofence, logType domain.LogType) (float64, error) {
	if !lat.IsSet() || !lon.IsSet() {
		return 0, ErrMissingLocation
	}

	latV, err := lat.Float()
	if err != nil {
		return 0, ErrInvalidCoordinates
	}
	lonV, err := lon.Float()
	if err != nil {
		return 0, ErrInvalidCoordinates
	}
	if !geo.ValidCoordinates(latV, lonV) {
		return 0, ErrInvalidCoordinates
	}

	if !fence.Valid() {
		return 0, brancherrors.ErrBranchNotConfigured
	}

	distance := geo.Distance(fence.Latitude, fence.Longitude, latV, lonV)
	if distance > fence.RadiusMeters {
		return distance, Exceeded(distance, fence.RadiusMeters, logType)
	}

	return distance, nil
}

func Exceeded(distance, radius float64, logType domain.LogType) *apperror.AppError {
	return ErrGeofenceExceeded.
		WithMessage(fmt.Sprintf(
			"You are %.2f meters away from the branch location. Please move within %s meters to %s.",
			distance, formatRadius(radius), logType.Action(),
		)).
		WithDetails(ExceededDetails{
			DistanceMeters: distance,
			RadiusMeters:   radius,
			Action:         logType.Action(),
		})
}

// RoundMeters rounds to centimeters, the precision reported to clients.
func RoundMeters(d float64) float64 {
	return math.Round(d*100) / 100
}

func formatRadius(r float64) string {
	if r == math.Trunc(r) {
		return fmt.Sprintf("%.0f", r)
	}
	return fmt.Sprintf("%.2f", r)
}
