package pricing

import (
	"errors"
	"fmt"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the priced cart line the calculator consumes: a snapshotted unit
// price and a quantity. It deliberately carries nothing else, so the
// calculator stays independent of the order model.
type Item struct { //nolint:recvcheck //using for validation
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates a priced cart line. Quantity must be at least 1 and the
// unit price must be a constructed Money value.
func NewItem(unitPrice kernel.Money, quantity int) (Item, error) {
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Item was created through its constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// UnitPrice returns the snapshotted price of one unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price x quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// Zone tier distance bounds in kilometers, both inclusive upper bounds.
const (
	TierAMaxDistanceKm = 5.0
	TierBMaxDistanceKm = 10.0
)

// Config carries the rates and tier amounts the calculator prices with.
// DefaultConfig returns the production defaults; deployments override them
// through the environment.
type Config struct {
	// PlatformRate is the marketplace's cut of the subtotal, e.g. 0.05.
	PlatformRate decimal.Decimal
	// ProcessingRate is the payment processing rate applied over
	// subtotal + platform fee + delivery fee, e.g. 0.029.
	ProcessingRate decimal.Decimal
	// TierAFee is the flat delivery fee for distances up to TierAMaxDistanceKm.
	TierAFee kernel.Money
	// TierBFee is the flat delivery fee for distances up to TierBMaxDistanceKm.
	TierBFee kernel.Money
	// TierCFee is the flat delivery fee beyond TierBMaxDistanceKm.
	TierCFee kernel.Money
}

// DefaultConfig returns the standard marketplace rates: 5% platform fee,
// 2.9% processing fee, and 60/100/180 zone tiers.
func DefaultConfig() Config {
	tierA, _ := kernel.NewMoneyFromFloat(60)
	tierB, _ := kernel.NewMoneyFromFloat(100)
	tierC, _ := kernel.NewMoneyFromFloat(180)

	return Config{
		PlatformRate:   decimal.NewFromFloat(0.05),
		ProcessingRate: decimal.NewFromFloat(0.029),
		TierAFee:       tierA,
		TierBFee:       tierB,
		TierCFee:       tierC,
	}
}

// Calculator computes order totals. It is pure: the same inputs always
// produce the same Totals, so a persisted order's receipt can be
// regenerated exactly at any later time.
type Calculator struct {
	config Config
}

// NewCalculator creates a calculator with the given rates. The tier fees
// must be constructed Money values and the rates must not be negative.
func NewCalculator(config Config) (Calculator, error) {
	if err := errors.Join(
		config.TierAFee.Validate(),
		config.TierBFee.Validate(),
		config.TierCFee.Validate(),
	); err != nil {
		return Calculator{}, err
	}
	if config.PlatformRate.IsNegative() || config.ProcessingRate.IsNegative() {
		return Calculator{}, errs.NewValueIsInvalidError("fee rate")
	}

	return Calculator{config: config}, nil
}

// CalculateTotals prices a cart. distanceKm is the courier distance between
// shop and delivery pin; it is ignored for pickup orders.
//
// The cart must contain at least one item (empty carts are a
// ValidationError rejected before any fee math) and the distance must not
// be negative.
func (c Calculator) CalculateTotals(
	items []Item,
	method kernel.DeliveryMethod,
	distanceKm float64,
) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, errs.NewValueIsRequiredError("items")
	}
	if err := method.Validate(); err != nil {
		return Totals{}, err
	}
	if method == kernel.DeliveryMethodDelivery && distanceKm < 0 {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}
	subtotal = subtotal.Round2()

	platformFee := subtotal.MulRate(c.config.PlatformRate).Round2()
	deliveryFee := c.deliveryFee(method, distanceKm)

	// Processing compounds over the other fees, so it is computed last.
	feeBase := subtotal.Add(platformFee).Add(deliveryFee)
	processingFee := feeBase.MulRate(c.config.ProcessingRate).Round2()

	return NewTotals(subtotal, platformFee, deliveryFee, processingFee)
}

// deliveryFee performs the zone tier lookup. Tier bounds are inclusive:
// exactly 5km still prices as tier A, exactly 10km as tier B.
func (c Calculator) deliveryFee(method kernel.DeliveryMethod, distanceKm float64) kernel.Money {
	if method != kernel.DeliveryMethodDelivery {
		return kernel.ZeroMoney()
	}

	switch {
	case distanceKm <= TierAMaxDistanceKm:
		return c.config.TierAFee
	case distanceKm <= TierBMaxDistanceKm:
		return c.config.TierBFee
	default:
		return c.config.TierCFee
	}
}
