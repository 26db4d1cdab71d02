package order

import (
	"errors"
	"fmt"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// via the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line of an order. The unit price is snapshotted
// from the catalog at order time and never recomputed, so closed orders
// remain exact history even after catalog repricing.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	quantity    int
	unitPrice   kernel.Money
	makeToOrder bool

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item. Quantity must be at least 1; the name
// must be non-empty; productID and unitPrice must be constructed values.
// makeToOrder marks goods that require shop preparation before approval,
// forcing the order onto the escrowed Pending path.
func NewLineItem(
	productID kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
	makeToOrder bool,
) (LineItem, error) {
	item := LineItem{
		makeToOrder: makeToOrder,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks that the line item was created through its constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog identifier of the product.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at order time.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of one unit captured at order time.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// MakeToOrder reports whether the item requires shop preparation before
// approval.
func (i LineItem) MakeToOrder() bool {
	return i.makeToOrder
}

// PricingItem converts the line into the fee calculator's input form.
func (i LineItem) PricingItem() (pricing.Item, error) {
	return pricing.NewItem(i.unitPrice, i.quantity)
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
