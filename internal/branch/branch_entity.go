package branch

import (
	"time"

	"github.com/google/uuid"
)

type Branch struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *float64 `gorm:"column:checkin_radius_meters"`
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Geofence is the circle a branch accepts attendance in.
type Geofence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

func (g Geofence) Valid() bool {
	return g.RadiusMeters > 0 &&
		g.Latitude >= -90 && g.Latitude <= 90 &&
		g.Longitude >= -180 && g.Longitude <= 180
}

// Geofence returns false when any of the three columns is missing or the
// radius is not positive.
func (b *Branch) Geofence() (Geofence, bool) {
	if b.Latitude == nil || b.Longitude == nil || b.RadiusMeters == nil {
		return Geofence{}, false
	}
	g := Geofence{
		Latitude:     *b.Latitude,
		Longitude:    *b.Longitude,
		RadiusMeters: *b.RadiusMeters,
	}
	return g, g.Valid()
}

func (b *Branch) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID.String()
}
