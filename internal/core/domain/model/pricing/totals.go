package pricing

import (
	"errors"
	"fmt"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

// ErrTotalsAreNotConstructed is returned when a Totals value was not created
// through NewTotals or RestoreTotals.
var ErrTotalsAreNotConstructed = errors.New(
	"Totals must be created via NewTotals or RestoreTotals")

// Totals is the immutable fee breakdown snapshotted onto an order at
// creation. It always satisfies
//
//	total = subtotal + platformFee + deliveryFee + processingFee
//
// which RestoreTotals re-checks when reconstructing from persistence.
type Totals struct { //nolint:recvcheck //using for validation
	subtotal      kernel.Money
	platformFee   kernel.Money
	deliveryFee   kernel.Money
	processingFee kernel.Money
	total         kernel.Money

	guard guard.ConstructorGuard
}

// NewTotals assembles a fee breakdown from its components, deriving the
// grand total. All components must be constructed Money values.
func NewTotals(subtotal, platformFee, deliveryFee, processingFee kernel.Money) (Totals, error) {
	if err := errors.Join(
		subtotal.Validate(),
		platformFee.Validate(),
		deliveryFee.Validate(),
		processingFee.Validate(),
	); err != nil {
		return Totals{}, err
	}

	return Totals{
		subtotal:      subtotal,
		platformFee:   platformFee,
		deliveryFee:   deliveryFee,
		processingFee: processingFee,
		total:         subtotal.Add(platformFee).Add(deliveryFee).Add(processingFee),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreTotals reconstructs a Totals value from persisted components and an
// explicit total, verifying the sum invariant still holds.
func RestoreTotals(subtotal, platformFee, deliveryFee, processingFee, total kernel.Money) (Totals, error) {
	totals, err := NewTotals(subtotal, platformFee, deliveryFee, processingFee)
	if err != nil {
		return Totals{}, err
	}

	if err = total.Validate(); err != nil {
		return Totals{}, err
	}
	if !totals.total.IsEqual(total) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("persisted total %s does not equal the sum of its fees %s",
				total, totals.total))
	}

	return totals, nil
}

// Validate checks that the Totals value was properly constructed.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// Subtotal returns the sum of line-item prices before fees.
func (t Totals) Subtotal() kernel.Money {
	return t.subtotal
}

// PlatformFee returns the marketplace's cut of the subtotal.
func (t Totals) PlatformFee() kernel.Money {
	return t.platformFee
}

// DeliveryFee returns the zone-tier delivery fee; zero for pickup orders.
func (t Totals) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// ProcessingFee returns the payment processing fee, computed over the other
// fees.
func (t Totals) ProcessingFee() kernel.Money {
	return t.processingFee
}

// Total returns the amount charged to the buyer.
func (t Totals) Total() kernel.Money {
	return t.total
}
