package queries

import (
	"context"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves a shop's open orders from the
// database, oldest first, excluding terminal statuses.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for dashboard queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query for all non-terminal orders of one shop.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_name,
			status,
			delivery_method,
			total,
			scheduled_ready,
			created_at
		FROM orders
		WHERE shop_id = ? AND status NOT IN (?, ?)
		ORDER BY created_at
	`, query.ShopID().Bytes(), int(order.Collected), int(order.Rejected)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			buyerName      string
			status         int
			deliveryMethod int
			total          decimal.Decimal
			scheduledReady *time.Time
			createdAt      time.Time
		)
		err = rows.Scan(&id, &buyerName, &status, &deliveryMethod, &total,
			&scheduledReady, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}

		orders = append(orders, GetActiveOrdersQueryResponse{
			OrderID:        orderID,
			BuyerName:      buyerName,
			Status:         order.Status(status),
			DeliveryMethod: kernel.DeliveryMethod(deliveryMethod),
			Total:          totalMoney,
			ScheduledReady: scheduledReady,
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
