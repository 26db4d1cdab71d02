package orderrepo

import (
	"context"
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatus saves an existing order, conditioned on the stored row
// still holding expectedStatus. Line items are immutable after creation and
// are not touched. A zero-row update means a concurrent writer moved the
// order first and surfaces as errs.ConcurrentModificationError.
func (r *GormOrderRepository) UpdateWithStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"status":         dto.Status,
			"driver_name":    dto.DriverName,
			"driver_vehicle": dto.DriverVehicle,
			"driver_plate":   dto.DriverPlate,
			"driver_phone":   dto.DriverPhone,
			"delivery_lat":   dto.DeliveryLat,
			"delivery_lon":   dto.DeliveryLon,
			"verification":   dto.Verification,
			"photo_ref":      dto.PhotoRef,
			"collected_on":   dto.CollectedOn,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError(aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByToken retrieves the order holding the given collection token.
// The token must already be normalized; matching is exact.
func (r *GormOrderRepository) GetByToken(ctx context.Context, token string) (*order.Order, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", token)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByShop retrieves one shop's complete order history.
func (r *GormOrderRepository) GetAllByShop(
	ctx context.Context,
	shopID kernel.UUID,
) ([]*order.Order, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		Find(&dtos, "shop_id = ?", shopID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return dtosToDomain(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status = ?", int(status)).Error
	if err != nil {
		return nil, err
	}

	return dtosToDomain(dtos)
}

func dtosToDomain(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
