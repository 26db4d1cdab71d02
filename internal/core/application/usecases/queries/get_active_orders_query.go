package queries

import (
	"errors"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves one shop's open orders, everything not yet
// collected or rejected, for the fulfillment dashboard.
type GetActiveOrdersQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a dashboard query for the given shop.
func NewGetActiveOrdersQuery(shopID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ShopID returns the shop whose open orders are requested.
func (q GetActiveOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetActiveOrdersQueryResponse represents one open order on the dashboard.
type GetActiveOrdersQueryResponse struct {
	OrderID        kernel.UUID
	BuyerName      string
	Status         order.Status
	DeliveryMethod kernel.DeliveryMethod
	Total          kernel.Money
	ScheduledReady *time.Time
	CreatedAt      time.Time
}
