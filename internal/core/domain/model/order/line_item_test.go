package order_test

import (
	"testing"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	productID := kernel.NewUUID()
	price, _ := kernel.NewMoneyFromFloat(650)

	t.Run("creates valid line item", func(t *testing.T) {
		item, err := order.NewLineItem(productID, "Rose bouquet", 2, price, false)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Rose bouquet", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.True(t, item.UnitPrice().IsEqual(price))
		assert.False(t, item.MakeToOrder())
	})

	t.Run("flags make-to-order goods", func(t *testing.T) {
		item, err := order.NewLineItem(productID, "Custom cake", 1, price, true)

		require.NoError(t, err)
		assert.True(t, item.MakeToOrder())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := order.NewLineItem(productID, "Rose bouquet", 0, price, false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewLineItem(productID, "", 1, price, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid product id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLineItem(invalidID, "Rose bouquet", 1, price, false)

		require.Error(t, err)
	})

	t.Run("collects multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidPrice kernel.Money

		_, err := order.NewLineItem(invalidID, "", -1, invalidPrice, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "line item name")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestLineItem_PricingItem(t *testing.T) {
	price, _ := kernel.NewMoneyFromFloat(120.5)
	item, err := order.NewLineItem(kernel.NewUUID(), "Chocolate box", 3, price, false)
	require.NoError(t, err)

	pricingItem, err := item.PricingItem()

	require.NoError(t, err)
	assert.Equal(t, 3, pricingItem.Quantity())
	assert.Equal(t, "361.50", pricingItem.LineTotal().String())
}

func TestNewDriverAssignment(t *testing.T) {
	t.Run("creates valid assignment", func(t *testing.T) {
		driver, err := order.NewDriverAssignment("Ali", "white van", "KDA 123X", "+254700000000")

		require.NoError(t, err)
		require.NoError(t, driver.Validate())
		assert.Equal(t, "Ali", driver.Name())
		assert.Equal(t, "white van", driver.Vehicle())
		assert.Equal(t, "KDA 123X", driver.Plate())
		assert.Equal(t, "+254700000000", driver.Phone())
	})

	t.Run("requires every field", func(t *testing.T) {
		_, err := order.NewDriverAssignment("", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "driver name")
		assert.Contains(t, err.Error(), "driver vehicle")
		assert.Contains(t, err.Error(), "driver plate")
		assert.Contains(t, err.Error(), "driver phone")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var driver order.DriverAssignment

		require.ErrorIs(t, driver.Validate(), order.ErrDriverAssignmentIsNotConstructed)
	})
}
