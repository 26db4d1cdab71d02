package commands

import (
	"context"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the cart through the fee calculator (resolving the courier
// distance for delivery orders), snapshots the order aggregate, and
// persists it transactionally.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geoService, calculator)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	log.Printf("order %s created with total %s", created.ID(), created.Totals().Total())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geoService ports.GeoService
	calculator pricing.Calculator
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence, a
// GeoService for the delivery-distance lookup, and a configured fee
// calculator.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	geoService ports.GeoService,
	calculator pricing.Calculator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geoService: geoService,
		calculator: calculator,
	}
}

// Handle processes the order creation command.
// Computes the fee breakdown from the cart snapshot, creates the aggregate
// (which decides the escrow-or-instant starting status from the cart
// composition) and persists it. Returns the created order so the inbound
// adapter can surface the collection token and totals to the buyer.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	distanceKm, err := h.resolveDistance(ctx, cmd)
	if err != nil {
		return nil, err
	}

	pricingItems := make([]pricing.Item, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		pricingItem, itemErr := item.PricingItem()
		if itemErr != nil {
			return nil, itemErr
		}
		pricingItems = append(pricingItems, pricingItem)
	}

	totals, err := h.calculator.CalculateTotals(pricingItems, cmd.DeliveryMethod(), distanceKm)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.BuyerName(),
		cmd.ShopID(),
		cmd.Items(),
		totals,
		cmd.DeliveryMethod(),
		cmd.DeliveryLocation(),
		cmd.ScheduledReady(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

func (h CreateOrderCommandHandler) resolveDistance(
	ctx context.Context,
	cmd CreateOrderCommand,
) (float64, error) {
	if cmd.DeliveryMethod() != kernel.DeliveryMethodDelivery {
		return 0, nil
	}
	return h.geoService.DistanceKm(ctx, cmd.ShopLocation(), *cmd.DeliveryLocation())
}
