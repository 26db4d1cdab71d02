package queries

import (
	"errors"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/guard"
)

var ErrGetPreparationDueQueryIsNotConstructed = errors.New(
	"GetPreparationDueQuery must be created via NewGetPreparationDueQuery constructor",
)

// GetPreparationDueQuery finds paid orders whose promised preparation time
// has passed without the shop marking them ready or handing them over. The
// reminder job polls this on a schedule.
type GetPreparationDueQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetPreparationDueQuery creates an overdue-preparation query evaluated
// against the given instant.
func NewGetPreparationDueQuery(asOf time.Time) (GetPreparationDueQuery, error) {
	if asOf.IsZero() {
		return GetPreparationDueQuery{}, errors.New("asOf must not be the zero time")
	}

	return GetPreparationDueQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPreparationDueQuery) Validate() error {
	return q.guard.Validate(ErrGetPreparationDueQueryIsNotConstructed)
}

// AsOf returns the instant overdueness is evaluated against.
func (q GetPreparationDueQuery) AsOf() time.Time {
	return q.asOf
}

// GetPreparationDueQueryResponse represents one overdue order.
type GetPreparationDueQueryResponse struct {
	OrderID        kernel.UUID
	ShopID         kernel.UUID
	BuyerName      string
	ScheduledReady time.Time
}
