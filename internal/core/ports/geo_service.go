package ports

import (
	"context"

	"giftmarket/internal/core/domain/model/kernel"
)

// GeoService computes the courier distance between two points. Its only
// consumer is the delivery-fee tier lookup at order creation.
type GeoService interface {
	// DistanceKm returns the distance in kilometers between from and to.
	DistanceKm(ctx context.Context, from, to kernel.GeoPoint) (float64, error)
}
