package queries

import (
	"context"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/core/ports"
)

// QuoteTotalsQueryHandler computes a cart's fee breakdown. It touches no
// storage: the calculator is pure, so the quote equals what checkout
// would charge for the same cart and distance.
type QuoteTotalsQueryHandler struct {
	geoService ports.GeoService
	calculator pricing.Calculator
}

// NewQuoteTotalsQueryHandler creates a handler for pricing quotes.
func NewQuoteTotalsQueryHandler(
	geoService ports.GeoService,
	calculator pricing.Calculator,
) QuoteTotalsQueryHandler {
	return QuoteTotalsQueryHandler{
		geoService: geoService,
		calculator: calculator,
	}
}

// Handle prices the cart. Pickup quotes skip the distance lookup.
func (h QuoteTotalsQueryHandler) Handle(
	ctx context.Context,
	query QuoteTotalsQuery,
) (pricing.Totals, error) {
	if err := query.Validate(); err != nil {
		return pricing.Totals{}, err
	}

	distanceKm := 0.0
	if query.DeliveryMethod() == kernel.DeliveryMethodDelivery {
		distance, err := h.geoService.DistanceKm(
			ctx, query.ShopLocation(), *query.DeliveryLocation())
		if err != nil {
			return pricing.Totals{}, err
		}
		distanceKm = distance
	}

	pricingItems := make([]pricing.Item, 0, len(query.Items()))
	for _, item := range query.Items() {
		pricingItem, err := item.PricingItem()
		if err != nil {
			return pricing.Totals{}, err
		}
		pricingItems = append(pricingItems, pricingItem)
	}

	return h.calculator.CalculateTotals(pricingItems, query.DeliveryMethod(), distanceKm)
}
