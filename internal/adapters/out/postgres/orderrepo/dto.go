// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The fee breakdown is denormalized onto the row so the wallet
// view and verification screens read totals without touching line items.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID        uuid.UUID `gorm:"type:uuid;index"`
	BuyerName      string
	ShopID         uuid.UUID `gorm:"type:uuid;index"`
	Status         int       `gorm:"index"`
	Token          string    `gorm:"uniqueIndex"`
	DeliveryMethod int

	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2)"`
	PlatformFee   decimal.Decimal `gorm:"type:numeric(14,2)"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(14,2)"`
	ProcessingFee decimal.Decimal `gorm:"type:numeric(14,2)"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2)"`

	DriverName    *string
	DriverVehicle *string
	DriverPlate   *string
	DriverPhone   *string

	DeliveryLat *float64
	DeliveryLon *float64

	ScheduledReady *time.Time
	Verification   int
	PhotoRef       string
	CreatedAt      time.Time
	CollectedOn    *time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one snapshotted cart line. Lines are written once at
// order creation and never updated.
type ItemDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	Name        string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	MakeToOrder bool
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, flattening the optional driver binding and delivery pin
// into nullable columns.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		BuyerID:        aggregate.BuyerID().Bytes(),
		BuyerName:      aggregate.BuyerName(),
		ShopID:         aggregate.ShopID().Bytes(),
		Status:         int(aggregate.Status()),
		Token:          aggregate.Token().Value(),
		DeliveryMethod: int(aggregate.DeliveryMethod()),
		Subtotal:       aggregate.Totals().Subtotal().Decimal(),
		PlatformFee:    aggregate.Totals().PlatformFee().Decimal(),
		DeliveryFee:    aggregate.Totals().DeliveryFee().Decimal(),
		ProcessingFee:  aggregate.Totals().ProcessingFee().Decimal(),
		Total:          aggregate.Totals().Total().Decimal(),
		ScheduledReady: aggregate.ScheduledReady(),
		Verification:   int(aggregate.Verification()),
		PhotoRef:       aggregate.PhotoRef(),
		CreatedAt:      aggregate.CreatedAt(),
		CollectedOn:    aggregate.CollectedOn(),
	}

	if driver := aggregate.Driver(); driver != nil {
		name, vehicle, plate, phone := driver.Name(), driver.Vehicle(), driver.Plate(), driver.Phone()
		dto.DriverName = &name
		dto.DriverVehicle = &vehicle
		dto.DriverPlate = &plate
		dto.DriverPhone = &phone
	}

	if pin := aggregate.DeliveryLocation(); pin != nil {
		lat, lon := pin.Latitude(), pin.Longitude()
		dto.DeliveryLat = &lat
		dto.DeliveryLon = &lon
	}

	dto.Items = make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:     dto.ID,
			ProductID:   item.ProductID().Bytes(),
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
			MakeToOrder: item.MakeToOrder(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates cross-field consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	token, err := order.RestoreCollectionToken(dto.Token)
	if err != nil {
		return nil, err
	}

	var driver *order.DriverAssignment
	if dto.DriverName != nil {
		assignment, driverErr := order.NewDriverAssignment(
			*dto.DriverName, *dto.DriverVehicle, *dto.DriverPlate, *dto.DriverPhone)
		if driverErr != nil {
			return nil, driverErr
		}
		driver = &assignment
	}

	var deliveryLocation *kernel.GeoPoint
	if dto.DeliveryLat != nil && dto.DeliveryLon != nil {
		pin, pinErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLon)
		if pinErr != nil {
			return nil, pinErr
		}
		deliveryLocation = &pin
	}

	return order.RestoreOrder(
		id,
		buyerID,
		dto.BuyerName,
		shopID,
		items,
		totals,
		order.Status(dto.Status),
		token,
		kernel.DeliveryMethod(dto.DeliveryMethod),
		driver,
		deliveryLocation,
		dto.ScheduledReady,
		order.VerificationMethod(dto.Verification),
		dto.PhotoRef,
		dto.CreatedAt,
		dto.CollectedOn,
	)
}

func itemsToDomain(dtos []ItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(productID, dto.Name, dto.Quantity, unitPrice, dto.MakeToOrder)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func totalsToDomain(dto OrderDTO) (pricing.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return pricing.Totals{}, err
	}
	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return pricing.Totals{}, err
	}
	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return pricing.Totals{}, err
	}
	processingFee, err := kernel.NewMoney(dto.ProcessingFee)
	if err != nil {
		return pricing.Totals{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.RestoreTotals(subtotal, platformFee, deliveryFee, processingFee, total)
}
