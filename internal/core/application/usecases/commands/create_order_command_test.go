package commands_test

import (
	"testing"
	"time"

	"giftmarket/internal/core/application/usecases/commands"
	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidPickup(t *testing.T) {
	orderID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	shopLocation := testGeoPoint(t, -1.2833, 36.8167)
	items := testLineItems(t, false)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, buyerID, "Amina", shopID, shopLocation,
		items, kernel.DeliveryMethodPickup, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, buyerID, cmd.BuyerID())
	assert.Equal(t, "Amina", cmd.BuyerName())
	assert.Equal(t, shopID, cmd.ShopID())
	assert.True(t, shopLocation.IsEqual(cmd.ShopLocation()))
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, kernel.DeliveryMethodPickup, cmd.DeliveryMethod())
	assert.Nil(t, cmd.DeliveryLocation())
	assert.Nil(t, cmd.ScheduledReady())
}

func TestNewCreateOrderCommand_ValidDeliveryWithSchedule(t *testing.T) {
	pin := testGeoPoint(t, -1.2921, 36.8219)
	ready := futureTime(2 * time.Hour)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), testLineItems(t, true),
		kernel.DeliveryMethodDelivery, &pin, ready)

	require.NoError(t, err)
	require.NotNil(t, cmd.DeliveryLocation())
	assert.True(t, pin.IsEqual(*cmd.DeliveryLocation()))
	require.NotNil(t, cmd.ScheduledReady())
	assert.Equal(t, *ready, *cmd.ScheduledReady())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), "Amina", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), testLineItems(t, false),
		kernel.DeliveryMethodPickup, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyBuyerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), testLineItems(t, false),
		kernel.DeliveryMethodPickup, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), nil,
		kernel.DeliveryMethodPickup, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_UnconstructedLineItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), []order.LineItem{{}},
		kernel.DeliveryMethodPickup, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
}

func TestNewCreateOrderCommand_DeliveryRequiresPin(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), testLineItems(t, false),
		kernel.DeliveryMethodDelivery, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_UnknownDeliveryMethod(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Amina", kernel.NewUUID(),
		testGeoPoint(t, -1.2833, 36.8167), testLineItems(t, false),
		kernel.DeliveryMethodUnknown, nil, nil)

	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
