package order_test

import (
	"testing"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/domain/model/pricing"
	"giftmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	id      kernel.UUID
	buyerID kernel.UUID
	shopID  kernel.UUID
	totals  pricing.Totals
	pin     kernel.GeoPoint
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	calc, err := pricing.NewCalculator(pricing.DefaultConfig())
	require.NoError(t, err)
	price, _ := kernel.NewMoneyFromFloat(650)
	item, err := pricing.NewItem(price, 1)
	require.NoError(t, err)
	totals, err := calc.CalculateTotals([]pricing.Item{item}, kernel.DeliveryMethodPickup, 0)
	require.NoError(t, err)

	pin, err := kernel.NewGeoPoint(-1.2921, 36.8219)
	require.NoError(t, err)

	return orderFixture{
		id:      kernel.NewUUID(),
		buyerID: kernel.NewUUID(),
		shopID:  kernel.NewUUID(),
		totals:  totals,
		pin:     pin,
	}
}

func (f orderFixture) lineItems(t *testing.T, makeToOrder bool) []order.LineItem {
	t.Helper()
	price, _ := kernel.NewMoneyFromFloat(650)
	item, err := order.NewLineItem(kernel.NewUUID(), "Rose bouquet", 1, price, makeToOrder)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func (f orderFixture) newPickupOrder(t *testing.T, makeToOrder bool) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		f.id, f.buyerID, "Amina", f.shopID,
		f.lineItems(t, makeToOrder), f.totals,
		kernel.DeliveryMethodPickup, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func (f orderFixture) newDeliveryOrder(t *testing.T, pinned bool) *order.Order {
	t.Helper()
	var location *kernel.GeoPoint
	if pinned {
		pin := f.pin
		location = &pin
	}
	o, err := order.NewOrder(
		f.id, f.buyerID, "Amina", f.shopID,
		f.lineItems(t, false), f.totals,
		kernel.DeliveryMethodDelivery, location, nil,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("instant cart starts paid", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, order.VerifiedNone, o.Verification())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.CollectedOn())
		require.NoError(t, o.Token().Validate())
	})

	t.Run("make-to-order cart starts pending in escrow", func(t *testing.T) {
		o := f.newPickupOrder(t, true)

		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("each order receives its own token", func(t *testing.T) {
		first := f.newPickupOrder(t, false)
		second := f.newPickupOrder(t, false)

		assert.False(t, first.Token().IsEqual(second.Token()))
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := order.NewOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			nil, f.totals, kernel.DeliveryMethodPickup, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing buyer name", func(t *testing.T) {
		_, err := order.NewOrder(
			f.id, f.buyerID, "", f.shopID,
			f.lineItems(t, false), f.totals, kernel.DeliveryMethodPickup, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed totals", func(t *testing.T) {
		var totals pricing.Totals

		_, err := order.NewOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), totals, kernel.DeliveryMethodPickup, nil, nil,
		)

		require.ErrorIs(t, err, pricing.ErrTotalsAreNotConstructed)
	})

	t.Run("rejects delivery pin on a pickup order", func(t *testing.T) {
		pin := f.pin

		_, err := order.NewOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), f.totals, kernel.DeliveryMethodPickup, &pin, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AcceptDecline(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("accept moves pending order to paid", func(t *testing.T) {
		o := f.newPickupOrder(t, true)

		require.NoError(t, o.Accept())

		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("decline moves pending order to rejected", func(t *testing.T) {
		o := f.newPickupOrder(t, true)

		require.NoError(t, o.Decline())

		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("accept fails on an instant order", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		err := o.Accept()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("decline fails after accept", func(t *testing.T) {
		o := f.newPickupOrder(t, true)
		require.NoError(t, o.Accept())

		require.ErrorIs(t, o.Decline(), errs.ErrInvalidTransition)
	})
}

func TestOrder_MarkReadyForDispatch(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("pinned delivery order becomes ready", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)

		require.NoError(t, o.MarkReadyForDispatch())

		assert.Equal(t, order.ReadyForDispatch, o.Status())
	})

	t.Run("fails without a pinned delivery location", func(t *testing.T) {
		o := f.newDeliveryOrder(t, false)

		err := o.MarkReadyForDispatch()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "delivery location is not pinned")
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("fails for pickup orders", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		err := o.MarkReadyForDispatch()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("pin can arrive after creation", func(t *testing.T) {
		o := f.newDeliveryOrder(t, false)

		require.NoError(t, o.PinDeliveryLocation(f.pin))
		require.NoError(t, o.MarkReadyForDispatch())

		assert.Equal(t, order.ReadyForDispatch, o.Status())
	})

	t.Run("pin is rejected on pickup orders", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		require.ErrorIs(t, o.PinDeliveryLocation(f.pin), errs.ErrInvalidTransition)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	f := newOrderFixture(t)
	driver, _ := order.NewDriverAssignment("Ali", "white van", "KDA 123X", "+254700000000")

	t.Run("binds driver to a ready order", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)
		require.NoError(t, o.MarkReadyForDispatch())

		require.NoError(t, o.AssignDriver(driver))

		assert.Equal(t, order.Dispatched, o.Status())
		require.NotNil(t, o.Driver())
		assert.Equal(t, "Ali", o.Driver().Name())
	})

	t.Run("fails before the order is ready", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)

		err := o.AssignDriver(driver)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.Driver())
	})

	t.Run("cannot dispatch twice", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)
		require.NoError(t, o.MarkReadyForDispatch())
		require.NoError(t, o.AssignDriver(driver))

		require.ErrorIs(t, o.AssignDriver(driver), errs.ErrInvalidTransition)
	})

	t.Run("rejects unconstructed driver", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)
		require.NoError(t, o.MarkReadyForDispatch())

		var zeroDriver order.DriverAssignment
		require.Error(t, o.AssignDriver(zeroDriver))
		assert.Equal(t, order.ReadyForDispatch, o.Status())
	})
}

func TestOrder_Collect(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("token-verified pickup collection", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		require.NoError(t, o.Collect(order.VerifiedByScan))

		assert.Equal(t, order.Collected, o.Status())
		assert.Equal(t, order.VerifiedByScan, o.Verification())
		require.NotNil(t, o.CollectedOn())
	})

	t.Run("manual modality is recorded as lower assurance", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		require.NoError(t, o.Collect(order.VerifiedManually))

		assert.Equal(t, order.VerifiedManually, o.Verification())
		assert.True(t, o.Verification().IsLowAssurance())
	})

	t.Run("second collect is an invalid transition", func(t *testing.T) {
		o := f.newPickupOrder(t, false)
		require.NoError(t, o.Collect(order.VerifiedByScan))
		collectedOn := *o.CollectedOn()

		err := o.Collect(order.VerifiedByScan)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, collectedOn, *o.CollectedOn())
	})

	t.Run("delivery orders cannot be collected through the pickup path", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)

		err := o.Collect(order.VerifiedByScan)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("collect requires a token-backed modality", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		require.Error(t, o.Collect(order.VerifiedNone))
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("escrowed order must be accepted before collection", func(t *testing.T) {
		o := f.newPickupOrder(t, true)

		require.ErrorIs(t, o.Collect(order.VerifiedByScan), errs.ErrInvalidTransition)
	})
}

func TestOrder_ConfirmHandover(t *testing.T) {
	f := newOrderFixture(t)
	driver, _ := order.NewDriverAssignment("Ali", "white van", "KDA 123X", "+254700000000")

	dispatched := func(t *testing.T) *order.Order {
		o := f.newDeliveryOrder(t, true)
		require.NoError(t, o.MarkReadyForDispatch())
		require.NoError(t, o.AssignDriver(driver))
		return o
	}

	t.Run("shop attestation closes a dispatched order", func(t *testing.T) {
		o := dispatched(t)

		require.NoError(t, o.ConfirmHandover())

		assert.Equal(t, order.Collected, o.Status())
		require.NotNil(t, o.CollectedOn())
		// handover is an attestation, not a token verification
		assert.Equal(t, order.VerifiedNone, o.Verification())
	})

	t.Run("fails before dispatch", func(t *testing.T) {
		o := f.newDeliveryOrder(t, true)

		require.ErrorIs(t, o.ConfirmHandover(), errs.ErrInvalidTransition)
	})

	t.Run("second handover is an invalid transition", func(t *testing.T) {
		o := dispatched(t)
		require.NoError(t, o.ConfirmHandover())

		require.ErrorIs(t, o.ConfirmHandover(), errs.ErrInvalidTransition)
	})
}

func TestOrder_AttachCollectionPhoto(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("photo is optional and never blocks collection", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		o.AttachCollectionPhoto("")
		require.NoError(t, o.Collect(order.VerifiedManually))

		assert.Empty(t, o.PhotoRef())
	})

	t.Run("photo recorded before finalization survives it", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		o.AttachCollectionPhoto("photos/handover-1.jpg")
		require.NoError(t, o.Collect(order.VerifiedManually))

		assert.Equal(t, "photos/handover-1.jpg", o.PhotoRef())
	})

	t.Run("first photo wins", func(t *testing.T) {
		o := f.newPickupOrder(t, false)

		o.AttachCollectionPhoto("photos/first.jpg")
		o.AttachCollectionPhoto("photos/second.jpg")

		assert.Equal(t, "photos/first.jpg", o.PhotoRef())
	})
}

func TestRestoreOrder(t *testing.T) {
	f := newOrderFixture(t)
	token := order.NewCollectionToken()
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("restores a paid pickup order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), f.totals,
			order.Paid, token, kernel.DeliveryMethodPickup,
			nil, nil, nil, order.VerifiedNone, "", createdAt, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.True(t, o.Token().IsEqual(token))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("restores a collected order with verification evidence", func(t *testing.T) {
		collectedOn := createdAt.Add(30 * time.Minute)

		o, err := order.RestoreOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), f.totals,
			order.Collected, token, kernel.DeliveryMethodPickup,
			nil, nil, nil, order.VerifiedByScan, "photos/p.jpg", createdAt, &collectedOn,
		)

		require.NoError(t, err)
		assert.Equal(t, order.VerifiedByScan, o.Verification())
		assert.Equal(t, "photos/p.jpg", o.PhotoRef())
	})

	t.Run("rejects a dispatched order without a driver", func(t *testing.T) {
		pin := f.pin

		_, err := order.RestoreOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), f.totals,
			order.Dispatched, token, kernel.DeliveryMethodDelivery,
			nil, &pin, nil, order.VerifiedNone, "", createdAt, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a collected order without a collection time", func(t *testing.T) {
		_, err := order.RestoreOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), f.totals,
			order.Collected, token, kernel.DeliveryMethodPickup,
			nil, nil, nil, order.VerifiedByScan, "", createdAt, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a collection time on an open order", func(t *testing.T) {
		collectedOn := createdAt.Add(time.Minute)

		_, err := order.RestoreOrder(
			f.id, f.buyerID, "Amina", f.shopID,
			f.lineItems(t, false), f.totals,
			order.Paid, token, kernel.DeliveryMethodPickup,
			nil, nil, nil, order.VerifiedNone, "", createdAt, &collectedOn,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
