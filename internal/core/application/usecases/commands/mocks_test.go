package commands_test

import (
	"context"
	"testing"
	"time"

	"giftmarket/internal/core/application/usecases/commands"
	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateWithStatus(
	ctx context.Context,
	o *order.Order,
	expectedStatus order.Status,
) error {
	args := m.Called(ctx, o, expectedStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByToken(ctx context.Context, token string) (*order.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByShop(
	ctx context.Context,
	shopID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockGeoService struct{ mock.Mock }

func (m *MockGeoService) DistanceKm(
	ctx context.Context,
	from, to kernel.GeoPoint,
) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Refund(
	ctx context.Context,
	orderID kernel.UUID,
	amount kernel.Money,
) error {
	args := m.Called(ctx, orderID, amount)
	return args.Error(0)
}

// Fixture helpers shared by the handler tests. Orders are built through
// the real domain constructors so handler tests exercise genuine
// transitions rather than hand-assembled state.

func testMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return money
}

func testGeoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func testLineItems(t *testing.T, makeToOrder bool) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), "woven basket", 2, testMoney(t, 325), makeToOrder)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func testTotals(t *testing.T, items []order.LineItem, method kernel.DeliveryMethod) pricing.Totals {
	t.Helper()
	calculator, err := pricing.NewCalculator(pricing.DefaultConfig())
	require.NoError(t, err)

	pricingItems := make([]pricing.Item, 0, len(items))
	for _, item := range items {
		pricingItem, itemErr := item.PricingItem()
		require.NoError(t, itemErr)
		pricingItems = append(pricingItems, pricingItem)
	}

	totals, err := calculator.CalculateTotals(pricingItems, method, 3)
	require.NoError(t, err)
	return totals
}

// newPickupOrder builds a pickup order in Paid (no make-to-order items).
func newPickupOrder(t *testing.T) *order.Order {
	t.Helper()
	items := testLineItems(t, false)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		items, testTotals(t, items, kernel.DeliveryMethodPickup),
		kernel.DeliveryMethodPickup, nil, nil)
	require.NoError(t, err)
	return o
}

// newEscrowedOrder builds a pickup order held in Pending by a make-to-order
// line.
func newEscrowedOrder(t *testing.T) *order.Order {
	t.Helper()
	items := testLineItems(t, true)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		items, testTotals(t, items, kernel.DeliveryMethodPickup),
		kernel.DeliveryMethodPickup, nil, nil)
	require.NoError(t, err)
	return o
}

// newDeliveryOrder builds a pinned delivery order in Paid.
func newDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	items := testLineItems(t, false)
	pin := testGeoPoint(t, -1.2921, 36.8219)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		items, testTotals(t, items, kernel.DeliveryMethodDelivery),
		kernel.DeliveryMethodDelivery, &pin, nil)
	require.NoError(t, err)
	return o
}

// newDispatchedOrder walks a delivery order to Dispatched.
func newDispatchedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newDeliveryOrder(t)
	require.NoError(t, o.MarkReadyForDispatch())
	driver, err := order.NewDriverAssignment(
		"Musa Otieno", "motorbike", "KMC 482T", "+254700111222")
	require.NoError(t, err)
	require.NoError(t, o.AssignDriver(driver))
	return o
}

func futureTime(offset time.Duration) *time.Time {
	at := time.Now().UTC().Add(offset)
	return &at
}
