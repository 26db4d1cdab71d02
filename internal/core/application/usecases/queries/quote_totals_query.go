package queries

import (
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

var ErrQuoteTotalsQueryIsNotConstructed = errors.New(
	"QuoteTotalsQuery must be created via NewQuoteTotalsQuery constructor",
)

// QuoteTotalsQuery prices a cart before checkout: same fee schedule as
// order creation, no order and no charge. The buyer sees the full
// breakdown (subtotal, platform, delivery, processing) while still
// deciding.
type QuoteTotalsQuery struct {
	shopLocation     kernel.GeoPoint
	items            []order.LineItem
	deliveryMethod   kernel.DeliveryMethod
	deliveryLocation *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewQuoteTotalsQuery creates a pricing quote request. Mirrors the
// checkout validation: a non-empty cart of constructed items, and a
// pinned delivery location when the method is delivery.
func NewQuoteTotalsQuery(
	shopLocation kernel.GeoPoint,
	items []order.LineItem,
	deliveryMethod kernel.DeliveryMethod,
	deliveryLocation *kernel.GeoPoint,
) (QuoteTotalsQuery, error) {
	if err := shopLocation.Validate(); err != nil {
		return QuoteTotalsQuery{}, err
	}
	if len(items) == 0 {
		return QuoteTotalsQuery{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return QuoteTotalsQuery{}, err
		}
	}
	if err := deliveryMethod.Validate(); err != nil {
		return QuoteTotalsQuery{}, err
	}
	if deliveryMethod == kernel.DeliveryMethodDelivery {
		if deliveryLocation == nil {
			return QuoteTotalsQuery{}, errs.NewValueIsRequiredError("delivery location")
		}
		if err := deliveryLocation.Validate(); err != nil {
			return QuoteTotalsQuery{}, err
		}
	}

	return QuoteTotalsQuery{
		shopLocation:     shopLocation,
		items:            items,
		deliveryMethod:   deliveryMethod,
		deliveryLocation: deliveryLocation,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteTotalsQuery) Validate() error {
	return q.guard.Validate(ErrQuoteTotalsQueryIsNotConstructed)
}

// ShopLocation returns the shop's coordinate.
func (q QuoteTotalsQuery) ShopLocation() kernel.GeoPoint {
	return q.shopLocation
}

// Items returns the cart being priced.
func (q QuoteTotalsQuery) Items() []order.LineItem {
	return q.items
}

// DeliveryMethod returns how the cart would be fulfilled.
func (q QuoteTotalsQuery) DeliveryMethod() kernel.DeliveryMethod {
	return q.deliveryMethod
}

// DeliveryLocation returns the pinned doorstep, nil for pickup.
func (q QuoteTotalsQuery) DeliveryLocation() *kernel.GeoPoint {
	return q.deliveryLocation
}
