package commands

import (
	"errors"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"
	"giftmarket/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a completed checkout: the payment
// collaborator has already signalled "charge succeeded" for the cart, and
// the engine now snapshots the order with its fee breakdown.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, "Amina", shopID,
//	    shopLocation, items, kernel.DeliveryMethodDelivery, &pin, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	buyerID          kernel.UUID
	buyerName        string
	shopID           kernel.UUID
	shopLocation     kernel.GeoPoint
	items            []order.LineItem
	deliveryMethod   kernel.DeliveryMethod
	deliveryLocation *kernel.GeoPoint
	scheduledReady   *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, requires a non-empty cart of constructed line
// items, and requires a pinned delivery location for delivery orders (the
// delivery fee is priced from it at creation).
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	buyerName string,
	shopID kernel.UUID,
	shopLocation kernel.GeoPoint,
	items []order.LineItem,
	deliveryMethod kernel.DeliveryMethod,
	deliveryLocation *kernel.GeoPoint,
	scheduledReady *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		scheduledReady: scheduledReady,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyer(buyerID, buyerName),
		cmd.setShop(shopID, shopLocation),
		cmd.setItems(items),
		cmd.setDelivery(deliveryMethod, deliveryLocation),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the buyer's identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// BuyerName returns the buyer's display name.
func (c CreateOrderCommand) BuyerName() string {
	return c.buyerName
}

// ShopID returns the fulfilling shop's identifier.
func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

// ShopLocation returns the shop's coordinate, the origin for the
// delivery-distance computation.
func (c CreateOrderCommand) ShopLocation() kernel.GeoPoint {
	return c.shopLocation
}

// Items returns the snapshotted cart lines.
func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

// DeliveryMethod returns the collection strategy chosen at checkout.
func (c CreateOrderCommand) DeliveryMethod() kernel.DeliveryMethod {
	return c.deliveryMethod
}

// DeliveryLocation returns the buyer's pinned doorstep coordinate, or nil
// for pickup orders.
func (c CreateOrderCommand) DeliveryLocation() *kernel.GeoPoint {
	return c.deliveryLocation
}

// ScheduledReady returns the shop's promised preparation time, or nil.
func (c CreateOrderCommand) ScheduledReady() *time.Time {
	return c.scheduledReady
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyer(buyerID kernel.UUID, buyerName string) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if buyerName == "" {
		return errs.NewValueIsRequiredError("buyer name")
	}
	c.buyerID = buyerID
	c.buyerName = buyerName
	return nil
}

func (c *CreateOrderCommand) setShop(shopID kernel.UUID, shopLocation kernel.GeoPoint) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	if err := shopLocation.Validate(); err != nil {
		return err
	}
	c.shopID = shopID
	c.shopLocation = shopLocation
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDelivery(
	method kernel.DeliveryMethod,
	location *kernel.GeoPoint,
) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if method == kernel.DeliveryMethodDelivery {
		if location == nil {
			return errs.NewValueIsRequiredError("delivery location")
		}
		if err := location.Validate(); err != nil {
			return err
		}
	}
	c.deliveryMethod = method
	c.deliveryLocation = location
	return nil
}
