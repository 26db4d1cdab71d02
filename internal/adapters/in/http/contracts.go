package http

import (
	"time"

	"giftmarket/internal/core/application/usecases/queries"
	"giftmarket/internal/core/domain/model/order"
	"giftmarket/internal/core/domain/model/pricing"
)

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CoordinateDTO is a latitude/longitude pair.
type CoordinateDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LineItemDTO is one cart line in an order creation request.
type LineItemDTO struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	MakeToOrder bool    `json:"make_to_order"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	BuyerID          string         `json:"buyer_id"`
	BuyerName        string         `json:"buyer_name"`
	ShopID           string         `json:"shop_id"`
	ShopLocation     CoordinateDTO  `json:"shop_location"`
	Items            []LineItemDTO  `json:"items"`
	DeliveryMethod   string         `json:"delivery_method"`
	DeliveryLocation *CoordinateDTO `json:"delivery_location,omitempty"`
	ScheduledReady   *time.Time     `json:"scheduled_ready,omitempty"`
}

// QuoteRequest is the body of POST /api/v1/quote: a cart priced with the
// checkout fee schedule, before any order exists.
type QuoteRequest struct {
	ShopLocation     CoordinateDTO  `json:"shop_location"`
	Items            []LineItemDTO  `json:"items"`
	DeliveryMethod   string         `json:"delivery_method"`
	DeliveryLocation *CoordinateDTO `json:"delivery_location,omitempty"`
}

// TotalsDTO is the fee breakdown surfaced to the buyer.
type TotalsDTO struct {
	Subtotal      string `json:"subtotal"`
	PlatformFee   string `json:"platform_fee"`
	DeliveryFee   string `json:"delivery_fee"`
	ProcessingFee string `json:"processing_fee"`
	Total         string `json:"total"`
}

// OrderCreatedResponse is returned from POST /api/v1/orders. It carries
// the collection token the buyer later presents at the counter.
type OrderCreatedResponse struct {
	OrderID string    `json:"order_id"`
	Status  string    `json:"status"`
	Token   string    `json:"token"`
	Totals  TotalsDTO `json:"totals"`
}

// DriverRequest is the courier descriptor bound at dispatch.
type DriverRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
	Plate   string `json:"plate"`
	Phone   string `json:"phone"`
}

// FinalizeRequest is the body of POST /api/v1/orders/:id/finalize.
// Modality is required for pickup orders (scan|manual) and must be empty
// for the delivery handover attestation. PhotoRef is optional either way.
type FinalizeRequest struct {
	Modality string `json:"modality,omitempty"`
	PhotoRef string `json:"photo_ref,omitempty"`
}

// VerifyRequest is the body of POST /api/v1/verify. With modality "scan"
// and no token, the server waits for the next scanner read instead.
type VerifyRequest struct {
	Token    string `json:"token,omitempty"`
	Modality string `json:"modality"`
}

// VerifyResponse is the match displayed to the shop before it commits to
// finalizing the handover.
type VerifyResponse struct {
	OrderID        string `json:"order_id"`
	BuyerName      string `json:"buyer_name"`
	ItemCount      int    `json:"item_count"`
	Total          string `json:"total"`
	Status         string `json:"status"`
	DeliveryMethod string `json:"delivery_method"`
	LowAssurance   bool   `json:"low_assurance"`
}

// ScanFeedRequest is the body of POST /api/v1/scan/feed.
type ScanFeedRequest struct {
	Raw string `json:"raw"`
}

// WalletResponse carries a shop's derived balances.
type WalletResponse struct {
	ShopID    string `json:"shop_id"`
	Pending   string `json:"pending"`
	Available string `json:"available"`
}

// ActiveOrderResponse is one open order on the shop dashboard.
type ActiveOrderResponse struct {
	OrderID        string     `json:"order_id"`
	BuyerName      string     `json:"buyer_name"`
	Status         string     `json:"status"`
	DeliveryMethod string     `json:"delivery_method"`
	Total          string     `json:"total"`
	ScheduledReady *time.Time `json:"scheduled_ready,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func totalsDTO(totals pricing.Totals) TotalsDTO {
	return TotalsDTO{
		Subtotal:      totals.Subtotal().String(),
		PlatformFee:   totals.PlatformFee().String(),
		DeliveryFee:   totals.DeliveryFee().String(),
		ProcessingFee: totals.ProcessingFee().String(),
		Total:         totals.Total().String(),
	}
}

func orderCreatedResponse(aggregate *order.Order) OrderCreatedResponse {
	return OrderCreatedResponse{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
		Token:   aggregate.Token().Value(),
		Totals:  totalsDTO(aggregate.Totals()),
	}
}

func verifyResponse(result queries.VerifyTokenQueryResponse) VerifyResponse {
	return VerifyResponse{
		OrderID:        result.OrderID.String(),
		BuyerName:      result.BuyerName,
		ItemCount:      result.ItemCount,
		Total:          result.Total.String(),
		Status:         result.Status.String(),
		DeliveryMethod: result.DeliveryMethod.String(),
		LowAssurance:   result.LowAssurance,
	}
}
