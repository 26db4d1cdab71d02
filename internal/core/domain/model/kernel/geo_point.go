package kernel

import (
	"fmt"

	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

const (
	// GeoLatitudeMin is the minimum valid latitude in degrees.
	GeoLatitudeMin = -90.0
	// GeoLatitudeMax is the maximum valid latitude in degrees.
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin is the minimum valid longitude in degrees.
	GeoLongitudeMin = -180.0
	// GeoLongitudeMax is the maximum valid longitude in degrees.
	GeoLongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate with validated latitude and
// longitude. It is an immutable value object used for shop locations and
// buyer delivery pins; the distance between two GeoPoints feeds the
// zone-based delivery fee lookup.
//
// The zero value of GeoPoint is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	pin, err := kernel.NewGeoPoint(-1.2921, 36.8219)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates in degrees.
// Latitude must lie in [GeoLatitudeMin, GeoLatitudeMax] and longitude in
// [GeoLongitudeMin, GeoLongitudeMax]; both bounds are inclusive.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError(
			"latitude", latitude, GeoLatitudeMin, GeoLatitudeMax)
	}
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError(
			"longitude", longitude, GeoLongitudeMin, GeoLongitudeMax)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the GeoPoint was created through its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two GeoPoints have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String returns a human-readable representation of the point.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}
