package queries

import (
	"context"
	"database/sql"
	"errors"

	"giftmarket/internal/core/domain/model/kernel"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VerifyTokenQueryHandler resolves collection tokens against the order
// store. Runs a plain SELECT, so a verification screen left open can never
// mutate or lock an order.
type VerifyTokenQueryHandler struct {
	db *gorm.DB
}

// NewVerifyTokenQueryHandler creates a handler for token verification
// queries.
func NewVerifyTokenQueryHandler(db *gorm.DB) VerifyTokenQueryHandler {
	return VerifyTokenQueryHandler{db: db}
}

// Handle executes the token lookup.
// Returns errs.ObjectNotFoundError when no order holds the token and
// errs.AlreadyCollectedError when the order was already handed over; both
// are presentable outcomes, not faults.
func (h VerifyTokenQueryHandler) Handle(
	ctx context.Context,
	query VerifyTokenQuery,
) (VerifyTokenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return VerifyTokenQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_name,
			o.status,
			o.delivery_method,
			o.total,
			(SELECT COALESCE(SUM(i.quantity), 0) FROM order_items i WHERE i.order_id = o.id)
		FROM orders o
		WHERE o.token = ?
	`, query.Token()).Row()

	var (
		id             uuid.UUID
		buyerName      string
		status         int
		deliveryMethod int
		total          decimal.Decimal
		itemCount      int
	)
	err := row.Scan(&id, &buyerName, &status, &deliveryMethod, &total, &itemCount)
	if errors.Is(err, sql.ErrNoRows) {
		return VerifyTokenQueryResponse{}, errs.NewObjectNotFoundError("token", query.Token())
	}
	if err != nil {
		return VerifyTokenQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return VerifyTokenQueryResponse{}, err
	}

	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return VerifyTokenQueryResponse{}, err
	}

	if order.Status(status) == order.Collected {
		return VerifyTokenQueryResponse{}, errs.NewAlreadyCollectedError(orderID.String())
	}

	return VerifyTokenQueryResponse{
		OrderID:        orderID,
		BuyerName:      buyerName,
		ItemCount:      itemCount,
		Total:          totalMoney,
		Status:         order.Status(status),
		DeliveryMethod: kernel.DeliveryMethod(deliveryMethod),
		LowAssurance:   query.Modality().IsLowAssurance(),
	}, nil
}
