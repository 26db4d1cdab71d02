// Package geo provides a local great-circle distance service. It stands
// in for a routing provider: delivery fees are tiered coarsely enough
// that straight-line kilometers are an acceptable proxy.
package geo

import (
	"context"
	"math"

	"giftmarket/internal/core/domain/model/kernel"
)

const earthRadiusKm = 6371.0

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// HaversineService computes distances with the haversine formula.
type HaversineService struct{}

// NewHaversineService creates a HaversineService.
func NewHaversineService() HaversineService {
	return HaversineService{}
}

// DistanceKm returns the great-circle distance between from and to.
func (HaversineService) DistanceKm(_ context.Context, from, to kernel.GeoPoint) (float64, error) {
	lat1 := radians(from.Latitude())
	lat2 := radians(to.Latitude())
	dLat := radians(to.Latitude() - from.Latitude())
	dLon := radians(to.Longitude() - from.Longitude())

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}
