package queries

import (
	"context"
	"time"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPreparationDueQueryHandler retrieves paid orders that blew past their
// promised preparation time. Orders without a schedule are never overdue.
type GetPreparationDueQueryHandler struct {
	db *gorm.DB
}

// NewGetPreparationDueQueryHandler creates a handler for overdue
// preparation queries.
func NewGetPreparationDueQueryHandler(db *gorm.DB) GetPreparationDueQueryHandler {
	return GetPreparationDueQueryHandler{db: db}
}

// Handle executes the overdue lookup.
func (h GetPreparationDueQueryHandler) Handle(
	ctx context.Context,
	query GetPreparationDueQuery,
) ([]GetPreparationDueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, shop_id, buyer_name, scheduled_ready
		FROM orders
		WHERE status = ? AND scheduled_ready IS NOT NULL AND scheduled_ready < ?
		ORDER BY scheduled_ready
	`, int(order.Paid), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetPreparationDueQueryResponse, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			shopID         uuid.UUID
			buyerName      string
			scheduledReady time.Time
		)
		if err = rows.Scan(&id, &shopID, &buyerName, &scheduledReady); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shop, idErr := kernel.UUIDFromBytes(shopID[:])
		if idErr != nil {
			return nil, idErr
		}

		overdue = append(overdue, GetPreparationDueQueryResponse{
			OrderID:        orderID,
			ShopID:         shop,
			BuyerName:      buyerName,
			ScheduledReady: scheduledReady,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
